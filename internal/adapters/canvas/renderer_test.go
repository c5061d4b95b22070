package canvas_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"parcours/internal/adapters/canvas"
	"parcours/internal/adapters/filestore"
	"parcours/internal/ports/mocks"
)

func TestRenderer_StoresCanvas(t *testing.T) {
	files := filestore.NewInMemoryStore()
	renderer := canvas.NewRenderer(files)

	id, err := renderer.Render(context.Background(), "parcours_doctoral/confirmation/minutes_canvas",
		map[string]any{"reference": "M-CDE25-000.001"})
	require.NoError(t, err)

	content, ok := files.Content(id)
	require.True(t, ok)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(content, &doc))
	assert.Equal(t, "parcours_doctoral/confirmation/minutes_canvas", doc["template"])
}

func TestRenderer_PropagatesUploadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mocks.NewMockFileService(ctrl)
	files.EXPECT().StoreRemote(gomock.Any(), gomock.Any(), gomock.Any(), "application/json").
		Return("", errors.New("s3 down"))

	_, err := canvas.NewRenderer(files).Render(context.Background(), "t", nil)
	assert.ErrorContains(t, err, "s3 down")
}
