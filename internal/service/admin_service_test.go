package service

import (
	"errors"
	"testing"

	"grc-track-go/internal/model"
	"grc-track-go/pkg/hash"
)

func newAdminFixture(users ...*model.User) (*mockUserRepo, *mockRequirementRepo, *activityRecorder, AdminService) {
	userRepo := newMockUserRepo(users...)
	reqRepo := newMockRequirementRepo()
	recorder := &activityRecorder{}
	svc := NewAdminService(userRepo, reqRepo, recorder)
	return userRepo, reqRepo, recorder, svc
}

func TestCreateUserHashesPassword(t *testing.T) {
	userRepo, _, recorder, svc := newAdminFixture()

	created, err := svc.CreateUser(UserInput{
		Username: "jdoe",
		Password: "Secret1!",
		FullName: "Jane Doe",
		Email:    "jdoe@example.com",
		Role:     model.RoleUser,
		Status:   model.UserStatusActive,
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	stored := userRepo.users[created.ID]
	if stored.Password == "Secret1!" {
		t.Error("password stored in plaintext")
	}
	if !hash.CheckPasswordHash("Secret1!", stored.Password) {
		t.Error("stored hash does not verify against the original password")
	}

	// 用户管理是系统级活动
	if len(recorder.recorded) != 1 {
		t.Fatalf("recorded %d activities, want 1", len(recorder.recorded))
	}
	if recorder.recorded[0].message != "Added new user jdoe (Jane Doe)" {
		t.Errorf("activity message = %q", recorder.recorded[0].message)
	}
	if recorder.recorded[0].departmentID != nil {
		t.Error("user management activity should be system-level")
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	_, _, _, svc := newAdminFixture(&model.User{ID: 1, Username: "jdoe"})

	_, err := svc.CreateUser(UserInput{Username: "jdoe", Password: "x"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("err = %v, want ErrUsernameTaken", err)
	}
}

func TestCreateUserDepartmentBoundToDirectorsOnly(t *testing.T) {
	_, _, _, svc := newAdminFixture()
	deptID := uint(3)

	director, err := svc.CreateUser(UserInput{Username: "dir", Password: "x", Role: model.RoleDirector, Department: &deptID})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if director.Department == nil || *director.Department != deptID {
		t.Errorf("director department = %v, want %d", director.Department, deptID)
	}

	plain, err := svc.CreateUser(UserInput{Username: "plain", Password: "x", Role: model.RoleUser, Department: &deptID})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if plain.Department != nil {
		t.Error("non-director kept a department binding")
	}
}

func TestUpdateUserKeepsPasswordWhenOmitted(t *testing.T) {
	hashed, _ := hash.HashPassword("Original1")
	userRepo, _, recorder, svc := newAdminFixture(&model.User{ID: 4, Username: "jdoe", Password: hashed})

	if _, err := svc.UpdateUser(4, UserInput{Username: "jdoe", FullName: "Jane Doe"}); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	if userRepo.users[4].Password != hashed {
		t.Error("password changed even though none was submitted")
	}

	if _, err := svc.UpdateUser(4, UserInput{Username: "jdoe", Password: "Rotated2"}); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	if !hash.CheckPasswordHash("Rotated2", userRepo.users[4].Password) {
		t.Error("submitted password was not re-hashed")
	}

	if len(recorder.recorded) != 2 || recorder.recorded[0].message != "Updated user jdoe" {
		t.Errorf("unexpected activities: %+v", recorder.recorded)
	}
}

func TestUpdateUserNotFound(t *testing.T) {
	_, _, _, svc := newAdminFixture()

	_, err := svc.UpdateUser(99, UserInput{Username: "ghost"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestDeleteUserProtectsDefaultAdmin(t *testing.T) {
	_, _, _, svc := newAdminFixture(&model.User{ID: 1, Username: "admin@kpmg.com", Role: model.RoleAdmin})

	if err := svc.DeleteUser(1); !errors.Is(err, ErrProtectedUser) {
		t.Errorf("err = %v, want ErrProtectedUser", err)
	}
}

func TestDeleteUser(t *testing.T) {
	userRepo, _, recorder, svc := newAdminFixture(
		&model.User{ID: 1, Username: "admin@kpmg.com"},
		&model.User{ID: 4, Username: "jdoe"},
	)

	if err := svc.DeleteUser(4); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if _, ok := userRepo.users[4]; ok {
		t.Error("user still present after delete")
	}
	if len(recorder.recorded) != 1 || recorder.recorded[0].message != "Deleted user jdoe" {
		t.Errorf("unexpected activities: %+v", recorder.recorded)
	}

	if err := svc.DeleteUser(99); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("missing user: err = %v, want ErrUserNotFound", err)
	}
}

func TestGetStatistics(t *testing.T) {
	deptID := uint(1)
	_, reqRepo, _, svc := newAdminFixture(
		&model.User{ID: 1, Username: "admin@kpmg.com", Role: model.RoleAdmin},
		&model.User{ID: 2, Username: "dir1", Role: model.RoleDirector, Department: &deptID},
		&model.User{ID: 3, Username: "dir2", Role: model.RoleDirector, Department: &deptID},
		&model.User{ID: 4, Username: "jdoe", Role: model.RoleUser},
	)
	reqRepo.statusCounts[model.StatusPending] = 7
	reqRepo.statusCounts[model.StatusCompleted] = 2

	stats, err := svc.GetStatistics()
	if err != nil {
		t.Fatalf("GetStatistics failed: %v", err)
	}
	if stats.TotalUsers != 4 {
		t.Errorf("TotalUsers = %d, want 4", stats.TotalUsers)
	}
	if stats.DirectorCount != 2 {
		t.Errorf("DirectorCount = %d, want 2", stats.DirectorCount)
	}
	if stats.TotalPending != 7 {
		t.Errorf("TotalPending = %d, want 7", stats.TotalPending)
	}
	if stats.TotalCompleted != 2 {
		t.Errorf("TotalCompleted = %d, want 2", stats.TotalCompleted)
	}
}
