package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Rig")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}
	if scene.GameObjects[0] != obj {
		t.Error("GameObject not added to scene")
	}
	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
}

func TestSceneUIDLookup(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Rig")

	scene.AddGameObject(obj)

	found := scene.FindByUID(obj.UID)
	if found != obj {
		t.Errorf("FindByUID failed: expected %v, got %v", obj, found)
	}

	if notFound := scene.FindByUID(99999); notFound != nil {
		t.Error("FindByUID should return nil for non-existent UID")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Rig")
	obj2 := NewGameObject("Wall")

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)

	scene.RemoveGameObject(obj1)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject after removal, got %d", len(scene.GameObjects))
	}
	if scene.GameObjects[0] != obj2 {
		t.Error("Wrong GameObject removed")
	}
	if scene.FindByUID(obj1.UID) != nil {
		t.Error("Removed GameObject still in UID map")
	}
	if scene.FindByUID(obj2.UID) != obj2 {
		t.Error("Remaining GameObject not in UID map")
	}
}

func TestSceneRemoveWithChildren(t *testing.T) {
	scene := NewScene("Test")
	rig := NewGameObject("Rig")
	head := NewGameObject("Head")

	scene.AddGameObject(rig)
	scene.AddGameObject(head)
	rig.AddChild(head)

	scene.RemoveGameObject(rig)

	if len(scene.GameObjects) != 0 {
		t.Errorf("Expected 0 GameObjects, got %d", len(scene.GameObjects))
	}
	if scene.FindByUID(rig.UID) != nil {
		t.Error("Parent still in UID map after removal")
	}
	if scene.FindByUID(head.UID) != nil {
		t.Error("Child still in UID map after removal")
	}
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("PlaySpace")

	scene.AddGameObject(obj)

	if found := scene.FindByName("PlaySpace"); found != obj {
		t.Error("FindByName failed")
	}
	if notFound := scene.FindByName("DoesNotExist"); notFound != nil {
		t.Error("FindByName should return nil for non-existent name")
	}
}

func TestSceneFindByTag(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Wall1")
	obj2 := NewGameObject("Wall2")
	obj3 := NewGameObject("Rig")

	obj1.Tags = []string{"static", "wall"}
	obj2.Tags = []string{"static"}
	obj3.Tags = []string{"player"}

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)
	scene.AddGameObject(obj3)

	if statics := scene.FindByTag("static"); len(statics) != 2 {
		t.Errorf("Expected 2 statics, got %d", len(statics))
	}
	if players := scene.FindByTag("player"); len(players) != 1 {
		t.Errorf("Expected 1 player, got %d", len(players))
	}
	if none := scene.FindByTag("nonexistent"); len(none) != 0 {
		t.Error("FindByTag should return empty slice for non-existent tag")
	}
}

func TestSceneUIDMapInitialization(t *testing.T) {
	scene := NewScene("Test")

	if scene.uidMap == nil {
		t.Error("uidMap should be initialized in NewScene")
	}

	scene.uidMap = nil
	obj := NewGameObject("Test")
	scene.AddGameObject(obj) // Should not panic

	if scene.uidMap == nil {
		t.Error("uidMap should be initialized on first AddGameObject")
	}
}
