package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_ErrorIsSorted(t *testing.T) {
	verr := NewValidationError()
	verr.Add("status", "Geçersiz durum")
	verr.Add("albumStatus", "Geçersiz albüm durumu")
	verr.Add("brideName", "Gelin adı zorunludur")

	want := "validation failed: albumStatus: Geçersiz albüm durumu; brideName: Gelin adı zorunludur; status: Geçersiz durum"
	for i := 0; i < 20; i++ {
		assert.Equal(t, want, verr.Error())
	}
}

func TestValidationError_OrNil(t *testing.T) {
	assert.NoError(t, NewValidationError().OrNil())

	var nilErr *ValidationError
	assert.NoError(t, nilErr.OrNil())

	verr := NewValidationError()
	verr.Add("type", "Geçersiz çekim türü")
	err := fmt.Errorf("create shoot: %w", verr.OrNil())
	assert.True(t, IsValidation(err))
	assert.ErrorIs(t, ErrInvalidCredentials, ErrUnauthorized)
}
