// Package asset serves the images, icons and text embedded in the binary.
package asset

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder

	"fyne.io/fyne/v2"

	"github.com/dixieflatline76/Stencil/util/log"
)

//go:embed images/* icons/* text/*
var assets embed.FS

// Manager loads embedded assets.
type Manager struct{}

// NewManager creates a new asset manager.
func NewManager() *Manager {
	return &Manager{}
}

// GetImage loads and decodes an embedded image by name.
func (am *Manager) GetImage(name string) (image.Image, error) {
	data, err := assets.ReadFile("images/" + name)
	if err != nil {
		log.Println("Error loading image:", err)
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return img, nil
}

// GetIcon loads an embedded icon by name as a fyne resource.
func (am *Manager) GetIcon(name string) (fyne.Resource, error) {
	if name == "" {
		return nil, fmt.Errorf("icon name is empty")
	}

	data, err := assets.ReadFile("icons/" + name)
	if err != nil {
		log.Println("Error loading icon:", err)
		return nil, err
	}
	return fyne.NewStaticResource(name, data), nil
}

// GetText loads an embedded text file by name.
func (am *Manager) GetText(name string) (string, error) {
	data, err := assets.ReadFile("text/" + name)
	if err != nil {
		log.Println("Error loading text:", err)
		return "", err
	}
	return string(data), nil
}
