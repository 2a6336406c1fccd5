package adminapi

import (
	"testing"

	"github.com/mqtt-tools/mosqadm/storage/model"
)

// createTestUser inserts a user directly through the store.
func createTestUser(t *testing.T, backs model.Backends, username string) *model.User {
	t.Helper()
	u, err := backs.Users.Create(username, "secret1", model.RoleUser)
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return u
}

func TestListACLEmpty(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, "GET", "/api/acl", nil)
	if status != 200 {
		t.Fatalf("status = %d, body %v", status, body)
	}
	if acl, ok := body["acl"]; !ok {
		t.Errorf("expected acl key in response, got %v", body)
	} else if l, _ := acl.([]any); len(l) != 0 {
		t.Errorf("expected no rules, got %v", acl)
	}
}

func TestAddACLValidation(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/acl", map[string]any{})
	if status != 400 {
		t.Fatalf("status = %d, want 400", status)
	}
	if typ := errType(t, body); typ != "ADD_ACL_VALIDATION_FAILED" {
		t.Errorf("type = %q", typ)
	}
	want := "Adding ACL rule failed on validation. " +
		"Username with 1 to 50 characters is required. " +
		"Topic with 1 to 100 characters is required. " +
		"RW must be an integer between 1 and 4"
	if msg := errMessage(t, body); msg != want {
		t.Errorf("message = %q, want %q", msg, want)
	}

	// rw out of range
	status, body = doJSON(
		t, app, "POST", "/api/acl",
		map[string]any{"username": "alice", "topic": "sensors/#", "rw": 9},
	)
	if status != 400 || errType(t, body) != "ADD_ACL_VALIDATION_FAILED" {
		t.Errorf("rw out of range: status %d, body %v", status, body)
	}
}

func TestAddACLUserNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(
		t, app, "POST", "/api/acl",
		map[string]any{"username": "ghost", "topic": "sensors/#", "rw": 1},
	)
	if status != 400 {
		t.Fatalf("status = %d, want 400", status)
	}
	if typ := errType(t, body); typ != "USER_NOT_FOUND" {
		t.Errorf("type = %q", typ)
	}
}

func TestAddACLConflict(t *testing.T) {
	app, backs := newTestApp(t)
	createTestUser(t, backs, "alice")

	status, body := doJSON(
		t, app, "POST", "/api/acl",
		map[string]any{"username": "alice", "topic": "sensors/#", "rw": 1},
	)
	if status != 200 {
		t.Fatalf("first create failed: status %d, body %v", status, body)
	}
	rule, _ := body["acl"].(map[string]any)
	if rule == nil || rule["id"] == float64(0) {
		t.Errorf("expected created rule with assigned id, got %v", body)
	}

	status, body = doJSON(
		t, app, "POST", "/api/acl",
		map[string]any{"username": "alice", "topic": "sensors/#", "rw": 2},
	)
	if status != 400 {
		t.Fatalf("status = %d, want 400", status)
	}
	if typ := errType(t, body); typ != "ACL_ALREADY_EXISTS" {
		t.Errorf("type = %q", typ)
	}
}

func TestEditACL(t *testing.T) {
	app, backs := newTestApp(t)
	createTestUser(t, backs, "alice")

	rule := model.ACLRule{Username: "alice", Topic: "sensors/#", RW: model.AccessRead}
	if err := backs.ACL.Create(&rule); err != nil {
		t.Fatalf("Failed to create rule: %v", err)
	}

	// Missing id
	status, body := doJSON(t, app, "PUT", "/api/acl", map[string]any{"topic": "other/#"})
	if status != 400 || errType(t, body) != "EDIT_ACL_VALIDATION_FAILED" {
		t.Errorf("missing id: status %d, body %v", status, body)
	}

	// Unknown id
	status, body = doJSON(t, app, "PUT", "/api/acl", map[string]any{"id": 999, "rw": 2})
	if status != 400 || errType(t, body) != "ACL_NOT_FOUND" {
		t.Errorf("unknown id: status %d, body %v", status, body)
	}

	// Topic and rw change
	status, body = doJSON(
		t, app, "PUT", "/api/acl",
		map[string]any{"id": rule.ID, "topic": "sensors/outdoor/#", "rw": 3},
	)
	if status != 200 {
		t.Fatalf("edit failed: status %d, body %v", status, body)
	}
	updated, _ := body["acl"].(map[string]any)
	if updated == nil || updated["topic"] != "sensors/outdoor/#" || updated["rw"] != float64(3) {
		t.Errorf("unexpected updated rule: %v", body)
	}
	if updated["username"] != "alice" {
		t.Error("username must stay immutable")
	}
}

func TestDeleteACL(t *testing.T) {
	app, backs := newTestApp(t)
	createTestUser(t, backs, "alice")

	r1 := model.ACLRule{Username: "alice", Topic: "sensors/#", RW: model.AccessRead}
	r2 := model.ACLRule{Username: "alice", Topic: "actuators/#", RW: model.AccessWrite}
	for _, r := range []*model.ACLRule{&r1, &r2} {
		if err := backs.ACL.Create(r); err != nil {
			t.Fatalf("Failed to create rule: %v", err)
		}
	}

	// Missing username
	status, body := doJSON(t, app, "DELETE", "/api/acl", map[string]any{"ids": []uint{r1.ID}})
	if status != 400 || errType(t, body) != "USERNAME_NOT_PROVIDED_WHEN_DELETING_ACL" {
		t.Errorf("missing username: status %d, body %v", status, body)
	}

	// Missing ids
	status, body = doJSON(t, app, "DELETE", "/api/acl", map[string]any{"username": "alice"})
	if status != 400 || errType(t, body) != "ACL_DELETE_INCORRECT_ID_INPUT" {
		t.Errorf("missing ids: status %d, body %v", status, body)
	}

	// Unknown user
	status, body = doJSON(t, app, "DELETE", "/api/acl", map[string]any{"username": "ghost", "ids": []uint{r1.ID}})
	if status != 400 || errType(t, body) != "USER_NOT_FOUND" {
		t.Errorf("unknown user: status %d, body %v", status, body)
	}

	// Delete both rules
	status, body = doJSON(
		t, app, "DELETE", "/api/acl",
		map[string]any{"username": "alice", "ids": []uint{r1.ID, r2.ID}},
	)
	if status != 200 {
		t.Fatalf("delete failed: status %d, body %v", status, body)
	}
	if body["msg"] != "ACL(s) has been deleted" {
		t.Errorf("unexpected confirmation: %v", body)
	}

	// Same delete again matches nothing
	status, body = doJSON(
		t, app, "DELETE", "/api/acl",
		map[string]any{"username": "alice", "ids": []uint{r1.ID, r2.ID}},
	)
	if status != 400 || errType(t, body) != "DELETE_FAILED_ACL_WITH_ID_NOT_FOUND" {
		t.Errorf("repeated delete: status %d, body %v", status, body)
	}
}
