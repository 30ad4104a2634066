package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basketeer/basketeer/internal/api"
	"github.com/basketeer/basketeer/internal/errors"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{"valid", "09120000001", false},
		{"too short", "0912", true},
		{"letters", "0912000000a", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhone(tt.phone)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrCodeInputInvalid))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateOTP(t *testing.T) {
	assert.NoError(t, ValidateOTP("1234"))
	assert.NoError(t, ValidateOTP("12345678"))
	assert.Error(t, ValidateOTP("123"))
	assert.Error(t, ValidateOTP("123456789"))
	assert.Error(t, ValidateOTP("12ab"))
}

func TestProductItemRendering(t *testing.T) {
	item := productItem{product: api.Product{Name: "Basil", Price: 1.5, Stock: 12}}

	assert.Equal(t, "Basil", item.Title())
	assert.Contains(t, item.Description(), "1.50")
	assert.Contains(t, item.Description(), "12")
	assert.Equal(t, "Basil", item.FilterValue())
}

func TestBrowseModelResults(t *testing.T) {
	model := newBrowseModel(api.NewClient("http://unused.invalid"), nil)
	model.results.SetSize(80, 20)

	updated, _ := model.Update(resultsMsg{products: []api.Product{
		{ID: "p1", Name: "Basil", Price: 1.5},
		{ID: "p2", Name: "Mint", Price: 2.0},
	}})

	m, ok := updated.(browseModel)
	require.True(t, ok)
	assert.Len(t, m.results.Items(), 2)
	assert.Contains(t, m.status, "2 products")
}

func TestBrowseModelResultError(t *testing.T) {
	model := newBrowseModel(api.NewClient("http://unused.invalid"), nil)

	updated, _ := model.Update(resultsMsg{err: errors.New(errors.ErrCodeAPINetwork, "down")})

	m := updated.(browseModel)
	assert.NotEmpty(t, m.status)
	assert.Empty(t, m.results.Items())
}

func TestBrowseModelQuit(t *testing.T) {
	model := newBrowseModel(api.NewClient("http://unused.invalid"), nil)

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})

	m := updated.(browseModel)
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
