package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCatalogApp_Initializers(t *testing.T) {
	app := NewCatalogApp()
	require.NotNil(t, app, "NewCatalogApp should not return nil")
}
