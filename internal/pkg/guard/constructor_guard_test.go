package guard_test

import (
	"errors"
	"testing"

	"foodorder/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := g.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a command object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type addItemRequest struct {
		foodName string
		quantity int
		guard    guard.ConstructorGuard
	}

	var errRequestNotConstructed = errors.New("addItemRequest must be created via newAddItemRequest")

	newAddItemRequest := func(foodName string, quantity int) (addItemRequest, error) {
		if foodName == "" {
			return addItemRequest{}, errors.New("food name is required")
		}
		if quantity < 1 {
			return addItemRequest{}, errors.New("quantity must be at least 1")
		}
		return addItemRequest{
			foodName: foodName,
			quantity: quantity,
			guard:    guard.NewConstructorGuard(),
		}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		req, err := newAddItemRequest("lagman", 2)

		// Then
		require.NoError(t, err)
		require.NoError(t, req.guard.Validate(errRequestNotConstructed))
		assert.Equal(t, "lagman", req.foodName)
		assert.Equal(t, 2, req.quantity)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		// Given
		var req addItemRequest // zero value

		// When
		err := req.guard.Validate(errRequestNotConstructed)

		// Then
		require.Error(t, err)
		assert.Equal(t, errRequestNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newAddItemRequest("", 1)
		require.Error(t, err)

		_, err = newAddItemRequest("lagman", 0)
		require.Error(t, err)
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for
// concurrent use.
func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for i := 0; i < 100; i++ {
		go func() {
			for j := 0; j < 1000; j++ {
				err := g.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	for i := 0; i < 100; i++ {
		<-done
	}
}
