package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webdeck/internal/application/port/mocks"
	"github.com/bnema/webdeck/internal/application/usecase"
	"github.com/bnema/webdeck/internal/domain/entity"
)

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	keys := []entity.ConfigKeyInfo{
		{
			Key:         "appearance.theme",
			Type:        "string",
			Default:     "dark",
			Description: "Initial launcher theme",
			Values:      []string{"light", "dark", "dim"},
			Section:     "Appearance",
		},
		{
			Key:         "window.width",
			Type:        "int",
			Default:     "1200",
			Description: "Initial app window width in pixels",
			Range:       "200-10000",
			Section:     "Window",
		},
	}

	t.Run("returns schema keys from provider", func(t *testing.T) {
		provider := mocks.NewMockConfigSchemaProvider(t)
		provider.EXPECT().GetSchema().Return(keys)

		uc := usecase.NewGetConfigSchemaUseCase(provider)
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		require.NoError(t, err)
		require.Len(t, result.Keys, 2)
		assert.Equal(t, "appearance.theme", result.Keys[0].Key)
		assert.Equal(t, "window.width", result.Keys[1].Key)
	})

	t.Run("filters by section", func(t *testing.T) {
		provider := mocks.NewMockConfigSchemaProvider(t)
		provider.EXPECT().GetSchema().Return(keys)

		uc := usecase.NewGetConfigSchemaUseCase(provider)
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "window"})

		require.NoError(t, err)
		require.Len(t, result.Keys, 1)
		assert.Equal(t, "200-10000", result.Keys[0].Range)
	})

	t.Run("empty provider", func(t *testing.T) {
		provider := mocks.NewMockConfigSchemaProvider(t)
		provider.EXPECT().GetSchema().Return(nil)

		uc := usecase.NewGetConfigSchemaUseCase(provider)
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		require.NoError(t, err)
		assert.Empty(t, result.Keys)
	})
}
