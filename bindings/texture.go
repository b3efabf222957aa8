package bindings

import (
	"go.uber.org/zap"

	"github.com/playday3008/scripthook-go/errors"
)

// CreateTexture loads an image file and returns the texture id used by
// DrawTexture. Ids are only valid for the loading script. A negative id
// means the hook rejected the file.
func (h *Hook) CreateTexture(path string) (int32, error) {
	if path == "" {
		return 0, errors.InvalidInput(errors.PhaseInvoke, "texture path must not be empty")
	}
	if h.fnCreateTexture == nil {
		if err := h.b.Bind(SymCreateTexture, &h.fnCreateTexture); err != nil {
			return 0, err
		}
	}

	id := h.fnCreateTexture(path)

	Logger().Debug("texture created", zap.String("path", path), zap.Int32("id", id))
	return id, nil
}

// DrawTexture queues one textured quad for the next frame. Coordinates
// and sizes are normalized to the screen; instance distinguishes
// repeated draws of the same texture and level orders overlapping quads.
// The draw lives for timeMS milliseconds, so scripts drawing every frame
// pass roughly one frame's duration.
func (h *Hook) DrawTexture(
	id, instance, level, timeMS int32,
	sizeX, sizeY, centerX, centerY, posX, posY float32,
	rotation, screenHeightScale float32,
	r, g, b, a float32,
) error {
	if h.fnDrawTexture == nil {
		if err := h.b.Bind(SymDrawTexture, &h.fnDrawTexture); err != nil {
			return err
		}
	}

	h.fnDrawTexture(id, instance, level, timeMS,
		sizeX, sizeY, centerX, centerY, posX, posY,
		rotation, screenHeightScale, r, g, b, a)
	return nil
}
