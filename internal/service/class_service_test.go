package service

import (
	"context"
	"reflect"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/ludus/internal/api"
	"github.com/mmynk/ludus/internal/models"
)

func (e *testEnv) createClass(t *testing.T, name string, weekdays, personIDs []string) *models.Class {
	t.Helper()

	resp, err := e.classes.CreateClass(context.Background(), connect.NewRequest(&api.CreateClassRequest{
		Name:      name,
		Weekdays:  weekdays,
		PersonIDs: personIDs,
	}))
	if err != nil {
		t.Fatalf("CreateClass(%q) failed: %v", name, err)
	}
	return resp.Msg.Class
}

func TestCreateClass_And_GetClass(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	created := env.createClass(t, "Futsal Sub-11", []string{"segunda", "quarta"}, []string{"p1", "p2"})
	if created.ID == "" {
		t.Fatal("expected non-empty class ID")
	}

	resp, err := env.classes.GetClass(context.Background(), connect.NewRequest(&api.IDRequest{ID: created.ID}))
	if err != nil {
		t.Fatalf("GetClass failed: %v", err)
	}

	class := resp.Msg.Class
	if class.Name != "Futsal Sub-11" {
		t.Errorf("name: expected 'Futsal Sub-11', got '%s'", class.Name)
	}
	if !reflect.DeepEqual(class.Weekdays, []string{"segunda", "quarta"}) {
		t.Errorf("weekdays: got %v", class.Weekdays)
	}
	if !reflect.DeepEqual(class.PersonIDs, []string{"p1", "p2"}) {
		t.Errorf("roster: got %v", class.PersonIDs)
	}
}

func TestCreateClass_EmptyLists(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	class := env.createClass(t, "Vôlei", nil, nil)
	if class.Weekdays == nil || class.PersonIDs == nil {
		t.Errorf("expected empty, non-nil lists, got %v and %v", class.Weekdays, class.PersonIDs)
	}
}

func TestCreateClass_MissingName(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	_, err := env.classes.CreateClass(context.Background(), connect.NewRequest(&api.CreateClassRequest{
		Weekdays: []string{"sexta"},
	}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestAddPersonToClass_Idempotent(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	class := env.createClass(t, "Futsal Sub-13", []string{"terça"}, []string{"p1"})

	req := &api.ClassMemberRequest{ClassID: class.ID, PersonID: "p2"}
	first, err := env.classes.AddPersonToClass(context.Background(), connect.NewRequest(req))
	if err != nil {
		t.Fatalf("AddPersonToClass failed: %v", err)
	}
	if !reflect.DeepEqual(first.Msg.Class.PersonIDs, []string{"p1", "p2"}) {
		t.Fatalf("roster after add: got %v", first.Msg.Class.PersonIDs)
	}

	second, err := env.classes.AddPersonToClass(context.Background(), connect.NewRequest(req))
	if err != nil {
		t.Fatalf("second AddPersonToClass failed: %v", err)
	}
	if !reflect.DeepEqual(second.Msg.Class.PersonIDs, first.Msg.Class.PersonIDs) {
		t.Errorf("repeated add changed roster: %v -> %v", first.Msg.Class.PersonIDs, second.Msg.Class.PersonIDs)
	}
}

func TestAddPersonToClass_ClassNotFound(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	_, err := env.classes.AddPersonToClass(context.Background(), connect.NewRequest(&api.ClassMemberRequest{
		ClassID:  "missing",
		PersonID: "p1",
	}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestRemovePersonFromClass(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	class := env.createClass(t, "Basquete", nil, []string{"p1", "p2", "p3"})

	resp, err := env.classes.RemovePersonFromClass(context.Background(), connect.NewRequest(&api.ClassMemberRequest{
		ClassID:  class.ID,
		PersonID: "p2",
	}))
	if err != nil {
		t.Fatalf("RemovePersonFromClass failed: %v", err)
	}
	if !reflect.DeepEqual(resp.Msg.Class.PersonIDs, []string{"p1", "p3"}) {
		t.Errorf("roster after remove: got %v", resp.Msg.Class.PersonIDs)
	}

	// Removing an absent person is a no-op.
	resp, err = env.classes.RemovePersonFromClass(context.Background(), connect.NewRequest(&api.ClassMemberRequest{
		ClassID:  class.ID,
		PersonID: "p9",
	}))
	if err != nil {
		t.Fatalf("RemovePersonFromClass of absent person failed: %v", err)
	}
	if !reflect.DeepEqual(resp.Msg.Class.PersonIDs, []string{"p1", "p3"}) {
		t.Errorf("roster changed: got %v", resp.Msg.Class.PersonIDs)
	}
}

func TestUpdateClass_KeepsRoster(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	class := env.createClass(t, "Futsal", []string{"segunda"}, []string{"p1", "p2"})

	resp, err := env.classes.UpdateClass(context.Background(), connect.NewRequest(&api.UpdateClassRequest{
		ID:   class.ID,
		Name: ptr("Futsal Avançado"),
	}))
	if err != nil {
		t.Fatalf("UpdateClass failed: %v", err)
	}

	updated := resp.Msg.Class
	if updated.Name != "Futsal Avançado" {
		t.Errorf("name: got %q", updated.Name)
	}
	if !reflect.DeepEqual(updated.Weekdays, []string{"segunda"}) {
		t.Errorf("weekdays changed: %v", updated.Weekdays)
	}
	if !reflect.DeepEqual(updated.PersonIDs, []string{"p1", "p2"}) {
		t.Errorf("roster changed: %v", updated.PersonIDs)
	}

	resp, err = env.classes.UpdateClass(context.Background(), connect.NewRequest(&api.UpdateClassRequest{
		ID:       class.ID,
		Weekdays: &[]string{"terça", "quinta"},
	}))
	if err != nil {
		t.Fatalf("UpdateClass weekdays failed: %v", err)
	}
	if !reflect.DeepEqual(resp.Msg.Class.Weekdays, []string{"terça", "quinta"}) {
		t.Errorf("weekdays: got %v", resp.Msg.Class.Weekdays)
	}
	if resp.Msg.Class.Name != "Futsal Avançado" {
		t.Errorf("name changed: %q", resp.Msg.Class.Name)
	}
}

func TestDeleteClass(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	class := env.createClass(t, "Handebol", []string{"sábado"}, []string{"p1"})

	if _, err := env.classes.DeleteClass(context.Background(), connect.NewRequest(&api.IDRequest{ID: class.ID})); err != nil {
		t.Fatalf("DeleteClass failed: %v", err)
	}

	_, err := env.classes.GetClass(context.Background(), connect.NewRequest(&api.IDRequest{ID: class.ID}))
	assertCode(t, err, connect.CodeNotFound)

	list, err := env.classes.ListClasses(context.Background(), connect.NewRequest(&api.Empty{}))
	if err != nil {
		t.Fatalf("ListClasses failed: %v", err)
	}
	if len(list.Msg.Classes) != 0 {
		t.Errorf("expected no classes, got %d", len(list.Msg.Classes))
	}
}

func TestClassRoster_ToleratesDeletedPersons(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	person := env.createPerson(t, "Lucas Rocha")
	class := env.createClass(t, "Futsal", nil, []string{person.ID})

	if _, err := env.persons.DeletePerson(context.Background(), connect.NewRequest(&api.IDRequest{ID: person.ID})); err != nil {
		t.Fatalf("DeletePerson failed: %v", err)
	}

	resp, err := env.classes.GetClass(context.Background(), connect.NewRequest(&api.IDRequest{ID: class.ID}))
	if err != nil {
		t.Fatalf("GetClass failed: %v", err)
	}
	if !resp.Msg.Class.HasPerson(person.ID) {
		t.Errorf("roster should keep the dangling ID, got %v", resp.Msg.Class.PersonIDs)
	}
}
