package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
}

type builtin struct {
	info   SceneInfo
	create func() *Scene
}

var builtins = map[string]builtin{
	"default": {
		info:   SceneInfo{ID: "default", DisplayName: "Default", Description: "Spheres on a ground sphere, one orbiting"},
		create: NewDefaultScene,
	},
	"pair": {
		info:   SceneInfo{ID: "pair", DisplayName: "Overlapping Pair", Description: "Two overlapping spheres showing hit resolution order"},
		create: NewPairScene,
	},
	"spheregrid": {
		info:   SceneInfo{ID: "spheregrid", DisplayName: "Sphere Grid", Description: "A 10x10 wall of spheres"},
		create: NewSphereGridScene,
	},
	"empty": {
		info:   SceneInfo{ID: "empty", DisplayName: "Empty", Description: "Sky only"},
		create: NewEmptyScene,
	},
}

// List returns the built-in scenes sorted by id
func List() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		scenes = append(scenes, b.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Create builds the named scene
func Create(name string) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	return b.create(), nil
}
