package world

import (
	"os"
	"path/filepath"
	"testing"

	"xrbody/internal/components"
	"xrbody/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const corridorScene = `{
  "objects": [
    {
      "name": "Floor",
      "tags": ["static"],
      "position": [0, -0.5, 0],
      "components": [
        {"type": "BoxCollider", "size": [20, 1, 20]}
      ]
    },
    {
      "name": "WallEast",
      "tags": ["static", "wall"],
      "position": [5, 1, 0],
      "rotation": [0, 45, 0],
      "scale": [1, 2, 1],
      "components": [
        {"type": "BoxCollider", "size": [0.4, 2, 10], "offset": [0, 0.5, 0]}
      ]
    },
    {
      "name": "Marker",
      "position": [1, 0, 1],
      "components": [
        {"type": "ModelRenderer", "mesh": "cube", "color": "Red"}
      ]
    }
  ]
}`

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write scene: %v", err)
	}
	return path
}

func TestLoadScene(t *testing.T) {
	w := New("corridor")
	if err := w.LoadScene(writeScene(t, corridorScene)); err != nil {
		t.Fatalf("LoadScene failed: %v", err)
	}

	if len(w.Scene.GameObjects) != 3 {
		t.Errorf("Expected 3 objects, got %d", len(w.Scene.GameObjects))
	}

	floor := w.Scene.FindByName("Floor")
	if floor == nil {
		t.Fatal("Floor not loaded")
	}
	if floor.Transform.Position.Y != -0.5 {
		t.Errorf("Floor position wrong: %v", floor.Transform.Position)
	}
	if floor.Transform.Scale.X != 1 {
		t.Error("Zero scale should default to 1")
	}

	col := engine.GetComponent[*components.BoxCollider](floor)
	if col == nil {
		t.Fatal("Floor should carry a BoxCollider")
	}
	if col.Size.X != 20 || col.Size.Y != 1 || col.Size.Z != 20 {
		t.Errorf("Collider size wrong: %v", col.Size)
	}
}

func TestLoadSceneCollidablesOnly(t *testing.T) {
	w := New("corridor")
	if err := w.LoadScene(writeScene(t, corridorScene)); err != nil {
		t.Fatalf("LoadScene failed: %v", err)
	}

	// The renderer-only marker is in the scene but not collidable
	if len(w.GetCollidableObjects()) != 2 {
		t.Errorf("Expected 2 collidables, got %d", len(w.GetCollidableObjects()))
	}
}

func TestLoadSceneRotationAndOffset(t *testing.T) {
	w := New("corridor")
	if err := w.LoadScene(writeScene(t, corridorScene)); err != nil {
		t.Fatalf("LoadScene failed: %v", err)
	}

	wall := w.Scene.FindByName("WallEast")
	if wall == nil {
		t.Fatal("WallEast not loaded")
	}
	if wall.Transform.Rotation.Y != 45 {
		t.Errorf("Expected rotation Y 45, got %f", wall.Transform.Rotation.Y)
	}
	if wall.Transform.Scale.Y != 2 {
		t.Errorf("Expected scale Y 2, got %f", wall.Transform.Scale.Y)
	}

	col := engine.GetComponent[*components.BoxCollider](wall)
	if col == nil {
		t.Fatal("WallEast should carry a BoxCollider")
	}
	if col.Offset.Y != 0.5 {
		t.Errorf("Expected collider offset Y 0.5, got %f", col.Offset.Y)
	}
}

func TestLoadSceneMissingFile(t *testing.T) {
	w := New("corridor")
	if err := w.LoadScene(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Expected error for missing scene file")
	}
}

func TestLoadSceneMalformedJSON(t *testing.T) {
	w := New("corridor")
	if err := w.LoadScene(writeScene(t, "{broken")); err == nil {
		t.Error("Expected error for malformed scene file")
	}
}

func TestRemove(t *testing.T) {
	w := New("test")
	g := engine.NewGameObject("Wall")
	g.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1}))
	w.Register(g)

	if len(w.GetCollidableObjects()) != 1 {
		t.Fatal("Expected 1 collidable after register")
	}

	w.Remove(g)

	if len(w.GetCollidableObjects()) != 0 {
		t.Error("Expected 0 collidables after remove")
	}
	if w.Scene.FindByName("Wall") != nil {
		t.Error("Object should be out of the scene after remove")
	}
}
