package cli

import (
	"errors"
	"fmt"
	"os"

	"until/internal/background"
	"until/internal/settings"
	"until/internal/storage"
)

type BgSetCmd struct {
	File string `arg:"" type:"existingfile" help:"Image file (JPEG, PNG, or GIF)."`
}

func (c *BgSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	encoded, err := background.Encode(f)
	if err != nil {
		return err
	}

	if err := ctx.Settings().Save(settings.Patch{Background: &encoded}); err != nil {
		// An oversized image must not clobber the previous background
		if errors.Is(err, storage.ErrValueTooLarge) {
			return fmt.Errorf("image is too large to store even after resizing; previous background kept")
		}
		return err
	}

	fmt.Println("Background saved.")
	return nil
}

type BgClearCmd struct{}

func (c *BgClearCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Settings().Reset(settings.FieldBackground); err != nil {
		return err
	}

	fmt.Println("Background cleared.")
	return nil
}
