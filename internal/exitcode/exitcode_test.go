package exitcode

import (
	"fmt"
	"testing"

	"github.com/basketeer/basketeer/internal/errors"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, Success},
		{"unauthorized", errors.New(errors.ErrCodeAPIUnauthorized, "token rejected"), AuthError},
		{"anonymous session", errors.New(errors.ErrCodeSessionAnonymous, "not logged in"), AuthError},
		{"network", errors.New(errors.ErrCodeAPINetwork, "timeout"), NetworkError},
		{"validation", errors.New(errors.ErrCodeAPIValidation, "bad phone"), ValidationError},
		{"cart quantity", errors.New(errors.ErrCodeCartQuantity, "must be at least 1"), ValidationError},
		{"server failure", errors.New(errors.ErrCodeAPIServer, "boom"), GeneralError},
		{"plain error", fmt.Errorf("plain"), GeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromError(tt.err); got != tt.want {
				t.Errorf("FromError() = %d, want %d", got, tt.want)
			}
		})
	}
}
