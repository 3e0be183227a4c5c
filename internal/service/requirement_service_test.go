package service

import (
	"errors"
	"testing"
	"time"

	"grc-track-go/internal/model"
)

func newRequirementFixture() (*mockDepartmentRepo, *mockRequirementRepo, *activityRecorder, RequirementService) {
	deptRepo := newMockDepartmentRepo(&model.Department{ID: 1, Name: "Corporate IT"})
	date := "2026-01-10"
	reqRepo := newMockRequirementRepo(&model.Requirement{
		ID:            5,
		DepartmentID:  1,
		Description:   "Quarterly access review evidence",
		RequestDate:   "2026-01-05",
		Status:        model.StatusPending,
		Remarks:       "initial",
		ReceivingDate: &date,
	})
	recorder := &activityRecorder{}
	svc := NewRequirementService(deptRepo, reqRepo, recorder)
	return deptRepo, reqRepo, recorder, svc
}

func TestUpdateRequirementRemarksOnly(t *testing.T) {
	_, reqRepo, recorder, svc := newRequirementFixture()

	before := time.Now()
	updated, err := svc.Update(adminClaims(), 1, 5, UpdateRequirementInput{Remarks: "  follow up next week  "})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	// 未提交的字段保持原值
	if updated.Status != model.StatusPending {
		t.Errorf("Status = %q, want unchanged %q", updated.Status, model.StatusPending)
	}
	if updated.ReceivingDate == nil || *updated.ReceivingDate != "2026-01-10" {
		t.Errorf("ReceivingDate = %v, want unchanged 2026-01-10", updated.ReceivingDate)
	}
	if updated.Remarks != "follow up next week" {
		t.Errorf("Remarks = %q, want trimmed value", updated.Remarks)
	}
	if updated.UpdatedAt.Before(before) {
		t.Error("UpdatedAt was not refreshed")
	}

	// 更新集中只应包含 remarks 和 updated_at
	if _, ok := reqRepo.lastFields["status"]; ok {
		t.Error("status leaked into the update set")
	}
	if _, ok := reqRepo.lastFields["receiving_date"]; ok {
		t.Error("receiving_date leaked into the update set")
	}
	if _, ok := reqRepo.lastFields["updated_at"]; !ok {
		t.Error("updated_at missing from the update set")
	}

	if len(recorder.recorded) != 0 {
		t.Errorf("recorded %d activities, want 0 without a status change", len(recorder.recorded))
	}
}

func TestUpdateRequirementEmptyFieldsIgnored(t *testing.T) {
	_, reqRepo, _, svc := newRequirementFixture()

	// 空白字符串等同于未提交
	if _, err := svc.Update(adminClaims(), 1, 5, UpdateRequirementInput{Status: "   "}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if _, ok := reqRepo.lastFields["status"]; ok {
		t.Error("blank status leaked into the update set")
	}
}

func TestUpdateRequirementStatusChangeRecordsActivity(t *testing.T) {
	_, _, recorder, svc := newRequirementFixture()

	updated, err := svc.Update(adminClaims(), 1, 5, UpdateRequirementInput{Status: model.StatusCompleted})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != model.StatusCompleted {
		t.Errorf("Status = %q, want %q", updated.Status, model.StatusCompleted)
	}

	if len(recorder.recorded) != 1 {
		t.Fatalf("recorded %d activities, want 1", len(recorder.recorded))
	}
	got := recorder.recorded[0]
	want := "Updated requirement #5 from pending to completed"
	if got.message != want {
		t.Errorf("activity message = %q, want %q", got.message, want)
	}
	if got.departmentID == nil || *got.departmentID != 1 {
		t.Errorf("activity departmentID = %v, want 1", got.departmentID)
	}
}

func TestUpdateRequirementSameStatusNoActivity(t *testing.T) {
	_, _, recorder, svc := newRequirementFixture()

	if _, err := svc.Update(adminClaims(), 1, 5, UpdateRequirementInput{Status: model.StatusPending}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(recorder.recorded) != 0 {
		t.Errorf("recorded %d activities, want 0 when status is unchanged", len(recorder.recorded))
	}
}

func TestUpdateRequirementDepartmentNotFound(t *testing.T) {
	_, _, _, svc := newRequirementFixture()

	_, err := svc.Update(adminClaims(), 99, 5, UpdateRequirementInput{Remarks: "x"})
	if !errors.Is(err, ErrDepartmentNotFound) {
		t.Errorf("err = %v, want ErrDepartmentNotFound", err)
	}
}

func TestUpdateRequirementNotFound(t *testing.T) {
	_, _, _, svc := newRequirementFixture()

	_, err := svc.Update(adminClaims(), 1, 99, UpdateRequirementInput{Remarks: "x"})
	if !errors.Is(err, ErrRequirementNotFound) {
		t.Errorf("err = %v, want ErrRequirementNotFound", err)
	}
}

func TestUpdateRequirementDirectorCrossDepartment(t *testing.T) {
	_, _, _, svc := newRequirementFixture()

	// 部门 2 的 director 不能动部门 1 的需求
	_, err := svc.Update(directorClaims(2), 1, 5, UpdateRequirementInput{Status: model.StatusCompleted})
	if !errors.Is(err, ErrAccessDenied) {
		t.Errorf("err = %v, want ErrAccessDenied", err)
	}
}

func TestUpdateRequirementDirectorOwnDepartment(t *testing.T) {
	_, _, _, svc := newRequirementFixture()

	if _, err := svc.Update(directorClaims(1), 1, 5, UpdateRequirementInput{Status: model.StatusInProgress}); err != nil {
		t.Fatalf("Update by own-department director failed: %v", err)
	}
}
