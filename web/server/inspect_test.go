package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/df07/go-ppm-pathtracer/pkg/core"
	"github.com/df07/go-ppm-pathtracer/pkg/material"
	"github.com/df07/go-ppm-pathtracer/pkg/scene"
)

func TestInspectPixel_DefaultScene(t *testing.T) {
	s := scene.NewDefaultScene()

	// Center pixel looks straight down -z at the small sphere
	result := inspectPixel(s, 201, 101, 100, 50)
	if !result.Hit {
		t.Fatal("Expected the center pixel to hit")
	}
	if result.Shape != s.Shapes[0] {
		t.Errorf("Expected the small sphere, got %v", result.Shape)
	}
	if result.HitRecord.Point.Subtract(core.NewVec3(0, 0, -0.5)).Length() > 1e-3 {
		t.Errorf("Expected hit near (0,0,-0.5), got %v", result.HitRecord.Point)
	}
	if !result.FrontFace {
		t.Error("Expected a front face hit")
	}

	// Bottom row sees the ground sphere
	result = inspectPixel(s, 200, 100, 100, 99)
	if !result.Hit || result.Shape != s.Shapes[1] {
		t.Errorf("Expected the bottom row to hit the ground sphere, got %+v", result)
	}

	// Top row sees sky
	result = inspectPixel(s, 200, 100, 100, 0)
	if result.Hit {
		t.Errorf("Expected the top row to miss, got %+v", result)
	}
}

func TestExtractMaterialInfo(t *testing.T) {
	s := NewServer(0)
	tests := []struct {
		mat      material.Material
		expected string
		key      string
	}{
		{material.NewLambertian(core.NewVec3(1, 0, 0)), "lambertian", "albedo"},
		{material.NewMetal(core.NewVec3(1, 1, 1), 0.5), "metal", "fuzz"},
		{material.NewDielectric(1.5), "dielectric", "refractiveIndex"},
		{material.Material{}, "unknown", ""},
	}

	for _, tt := range tests {
		kind, props := s.extractMaterialInfo(tt.mat)
		if kind != tt.expected {
			t.Errorf("Expected %s, got %s", tt.expected, kind)
		}
		if tt.key != "" {
			if _, ok := props[tt.key]; !ok {
				t.Errorf("Expected %s property for %s", tt.key, kind)
			}
		}
	}

	_, props := s.extractMaterialInfo(material.NewLambertian(core.NewVec3(1, 0, 0)))
	if props["color"] != "#ff0000" {
		t.Errorf("Expected #ff0000, got %v", props["color"])
	}
}

func TestHandleInspect(t *testing.T) {
	s := NewServer(0)

	rec := get(t, s, "/api/inspect?scene=default&width=201&height=101&x=100&y=50")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var response InspectResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if !response.Hit || response.MaterialType != "lambertian" || response.GeometryType != "sphere" {
		t.Errorf("Unexpected inspect response %+v", response)
	}

	for _, target := range []string{
		"/api/inspect?scene=default&x=abc&y=0",
		"/api/inspect?scene=default&x=0",
		"/api/inspect?scene=default&width=10&height=10&x=10&y=0",
		"/api/inspect?scene=nope&x=0&y=0",
	} {
		if rec := get(t, s, target); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}
