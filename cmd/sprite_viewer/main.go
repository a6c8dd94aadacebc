// cmd/sprite_viewer/main.go
//
// Standalone raylib tool to eyeball the sprite images and the collision
// masks derived from them. Left/Right cycle sprites, M toggles the mask
// overlay. Useful when an image's transparent padding makes in-game
// collisions look wrong.
package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-space-invaders/internal/assets"
)

const (
	screenWidth  = 800
	screenHeight = 600
	previewScale = 4
)

type spriteEntry struct {
	name    string
	file    string
	texture rl.Texture2D
	mask    *assets.Mask
	w, h    int
	opaque  int
}

func loadEntry(name, file string) (spriteEntry, error) {
	path := filepath.Join("img", file)
	f, err := os.Open(path)
	if err != nil {
		return spriteEntry{}, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return spriteEntry{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	texture := rl.LoadTexture(path)
	if texture.ID == 0 {
		return spriteEntry{}, fmt.Errorf("raylib could not load %s", path)
	}

	mask := assets.MaskFromImage(img)
	opaque := 0
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if mask.Opaque(x, y) {
				opaque++
			}
		}
	}

	return spriteEntry{
		name:    name,
		file:    file,
		texture: texture,
		mask:    mask,
		w:       img.Bounds().Dx(),
		h:       img.Bounds().Dy(),
		opaque:  opaque,
	}, nil
}

func main() {
	rl.InitWindow(screenWidth, screenHeight, "Sprite Viewer | Left/Right - Cycle, M - Mask Overlay")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	catalogue := []struct{ name, file string }{
		{"player", "Ship1.png"},
		{"enemy", "UFO.png"},
		{"projectile", "Laser.png"},
		{"explosion", "Explosion.png"},
		{"bg", "BG.jpg"},
	}

	var entries []spriteEntry
	for _, c := range catalogue {
		entry, err := loadEntry(c.name, c.file)
		if err != nil {
			log.Printf("sprite_viewer: skipping %s: %v", c.name, err)
			continue
		}
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		log.Fatal("sprite_viewer: no sprite images found under img/")
	}
	defer func() {
		for _, e := range entries {
			rl.UnloadTexture(e.texture)
		}
	}()

	index := 0
	showMask := true

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyRight) {
			index = (index + 1) % len(entries)
		}
		if rl.IsKeyPressed(rl.KeyLeft) {
			index = (index + len(entries) - 1) % len(entries)
		}
		if rl.IsKeyPressed(rl.KeyM) {
			showMask = !showMask
		}

		entry := entries[index]
		scale := float32(previewScale)
		if entry.w*previewScale > screenWidth || entry.h*previewScale > screenHeight {
			scale = 1
		}
		originX := (screenWidth - int(float32(entry.w)*scale)) / 2
		originY := (screenHeight - int(float32(entry.h)*scale)) / 2

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

		rl.DrawTextureEx(entry.texture, rl.NewVector2(float32(originX), float32(originY)), 0, scale, rl.White)

		if showMask {
			for y := 0; y < entry.h; y++ {
				for x := 0; x < entry.w; x++ {
					if !entry.mask.Opaque(x, y) {
						continue
					}
					rl.DrawRectangle(
						int32(originX+int(float32(x)*scale)),
						int32(originY+int(float32(y)*scale)),
						int32(scale), int32(scale),
						rl.NewColor(255, 0, 0, 90),
					)
				}
			}
		}

		rl.DrawText(fmt.Sprintf("%s (%s) %dx%d, %d opaque px", entry.name, entry.file, entry.w, entry.h, entry.opaque), 10, 10, 20, rl.RayWhite)
		rl.DrawText("Left/Right - cycle sprites, M - toggle mask", 10, screenHeight-30, 20, rl.Gray)

		rl.EndDrawing()
	}
}
