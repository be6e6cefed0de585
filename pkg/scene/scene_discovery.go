package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Name accepted by Create
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to the JSON file (file type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

const (
	builtinGroup = "Built-in Scenes"
	fileGroup    = "Scene Files"
)

type builtinScene struct {
	info   SceneInfo
	create func() *Scene
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Diffuse sphere resting on a large diffuse ground sphere",
		},
		create: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "materials",
			Name:        "Materials",
			Description: "Diffuse, fuzzy metal and glass spheres side by side",
		},
		create: NewMaterialsScene,
	},
	{
		info: SceneInfo{
			ID:          "hollow-glass",
			Name:        "Hollow Glass",
			Description: "Glass bubble made from a sphere with a negative-radius inner surface",
		},
		create: NewHollowGlassScene,
	},
}

// BuiltinNames returns the IDs of the builtin scenes in display order
func BuiltinNames() []string {
	names := make([]string, len(builtinScenes))
	for i, b := range builtinScenes {
		names[i] = b.info.ID
	}
	return names
}

// Create builds a builtin scene by ID, or loads a scene file when name ends in .json
func Create(name string) (*Scene, error) {
	if strings.HasSuffix(strings.ToLower(name), ".json") {
		return LoadScene(name)
	}
	for _, b := range builtinScenes {
		if b.info.ID == name {
			return b.create(), nil
		}
	}
	return nil, fmt.Errorf("unknown scene %q (available: %s, or a .json scene file)",
		name, strings.Join(BuiltinNames(), ", "))
}

// ListBuiltinScenes returns metadata for the builtin scenes
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	for i, b := range builtinScenes {
		info := b.info
		info.DisplayName = info.Name
		info.Group = builtinGroup
		info.Type = "builtin"
		scenes[i] = info
	}
	return scenes
}

// findScenesDir returns the first scenes directory that exists, or ""
func findScenesDir() string {
	for _, path := range []string{"scenes", "../scenes"} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ListFileScenes scans the scenes directory and returns discovered JSON scenes
func ListFileScenes() ([]SceneInfo, error) {
	scenesDir := findScenesDir()
	if scenesDir == "" {
		return []SceneInfo{}, nil
	}
	return ListFileScenesIn(scenesDir)
}

// ListFileScenesIn returns the JSON scenes in dir sorted by display name.
// Files that fail to parse are skipped with a warning.
func ListFileScenesIn(dir string) ([]SceneInfo, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseSceneMetadata reads name and description from a scene file,
// falling back to the file name
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:          filePath,
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       fileGroup,
		Type:        "file",
		FilePath:    filePath,
	}

	cfg, err := LoadConfig(filePath)
	if err != nil {
		return info, err
	}
	if cfg.Name != "" {
		info.Name = cfg.Name
		info.DisplayName = cfg.Name
	}
	info.Description = cfg.Description

	return info, nil
}

// ListAllScenes returns both builtin and file scenes, grouped by category
func ListAllScenes() (ScenesResponse, error) {
	var response ScenesResponse

	fileScenes, err := ListFileScenes()
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %w", err)
	}

	response.Groups = append(response.Groups, SceneGroup{
		Name:   builtinGroup,
		Scenes: ListBuiltinScenes(),
	})
	if len(fileScenes) > 0 {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   fileGroup,
			Scenes: fileScenes,
		})
	}

	return response, nil
}

// titleCase converts a filename-style string to title case
// e.g., "three-spheres" -> "Three Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
