package service

import (
	"time"

	"grc-track-go/internal/model"
	"grc-track-go/pkg/token"

	"gorm.io/gorm"
)

// 本文件提供 service 层测试共用的内存版 repository 实现。

type mockDepartmentRepo struct {
	departments map[uint]*model.Department
}

func newMockDepartmentRepo(depts ...*model.Department) *mockDepartmentRepo {
	m := &mockDepartmentRepo{departments: make(map[uint]*model.Department)}
	for _, d := range depts {
		m.departments[d.ID] = d
	}
	return m
}

func (m *mockDepartmentRepo) FindAll() ([]model.Department, error) {
	var out []model.Department
	for _, d := range m.departments {
		out = append(out, *d)
	}
	return out, nil
}

func (m *mockDepartmentRepo) FindAllWithRequirements() ([]model.Department, error) {
	return m.FindAll()
}

func (m *mockDepartmentRepo) FindByID(id uint) (*model.Department, error) {
	d, ok := m.departments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (m *mockDepartmentRepo) FindByIDWithRequirements(id uint) (*model.Department, error) {
	return m.FindByID(id)
}

func (m *mockDepartmentRepo) Create(dept *model.Department) error {
	m.departments[dept.ID] = dept
	return nil
}

func (m *mockDepartmentRepo) Count() (int64, error) {
	return int64(len(m.departments)), nil
}

type reqKey struct {
	reqID  uint
	deptID uint
}

type mockRequirementRepo struct {
	requirements map[reqKey]*model.Requirement
	statusCounts map[string]int64
	// lastFields 记录最近一次 UpdateFields 收到的更新集
	lastFields map[string]interface{}
}

func newMockRequirementRepo(reqs ...*model.Requirement) *mockRequirementRepo {
	m := &mockRequirementRepo{
		requirements: make(map[reqKey]*model.Requirement),
		statusCounts: make(map[string]int64),
	}
	for _, r := range reqs {
		m.requirements[reqKey{r.ID, r.DepartmentID}] = r
	}
	return m
}

func (m *mockRequirementRepo) FindByIDAndDepartment(reqID, deptID uint) (*model.Requirement, error) {
	r, ok := m.requirements[reqKey{reqID, deptID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (m *mockRequirementRepo) FindWithFiles(reqID, deptID uint) (*model.Requirement, error) {
	return m.FindByIDAndDepartment(reqID, deptID)
}

func (m *mockRequirementRepo) Create(req *model.Requirement) error {
	m.requirements[reqKey{req.ID, req.DepartmentID}] = req
	return nil
}

func (m *mockRequirementRepo) UpdateFields(reqID, deptID uint, fields map[string]interface{}) error {
	r, ok := m.requirements[reqKey{reqID, deptID}]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.lastFields = fields
	if v, ok := fields["status"]; ok {
		r.Status = v.(string)
	}
	if v, ok := fields["remarks"]; ok {
		r.Remarks = v.(string)
	}
	if v, ok := fields["receiving_date"]; ok {
		date := v.(string)
		r.ReceivingDate = &date
	}
	if v, ok := fields["updated_at"]; ok {
		r.UpdatedAt = v.(time.Time)
	}
	return nil
}

func (m *mockRequirementRepo) CountByStatus(status string) (int64, error) {
	return m.statusCounts[status], nil
}

type mockFileRepo struct {
	files map[string]*model.File
}

func newMockFileRepo(files ...*model.File) *mockFileRepo {
	m := &mockFileRepo{files: make(map[string]*model.File)}
	for _, f := range files {
		m.files[f.ID] = f
	}
	return m
}

func (m *mockFileRepo) Create(file *model.File) error {
	m.files[file.ID] = file
	return nil
}

func (m *mockFileRepo) FindByRequirement(reqID uint) ([]model.File, error) {
	var out []model.File
	for _, f := range m.files {
		if f.RequirementID == reqID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (m *mockFileRepo) FindByID(fileID string, reqID, deptID uint) (*model.File, error) {
	f, ok := m.files[fileID]
	if !ok || f.RequirementID != reqID || f.DepartmentID != deptID {
		return nil, gorm.ErrRecordNotFound
	}
	return f, nil
}

func (m *mockFileRepo) Delete(fileID string, reqID, deptID uint) error {
	delete(m.files, fileID)
	return nil
}

type mockFolderRepo struct {
	configs map[uint]*model.FolderConfig
}

func newMockFolderRepo(configs ...*model.FolderConfig) *mockFolderRepo {
	m := &mockFolderRepo{configs: make(map[uint]*model.FolderConfig)}
	for _, c := range configs {
		m.configs[c.DepartmentID] = c
	}
	return m
}

func (m *mockFolderRepo) FindAll() ([]model.FolderConfig, error) {
	var out []model.FolderConfig
	for _, c := range m.configs {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockFolderRepo) FindByDepartment(deptID uint) (*model.FolderConfig, error) {
	c, ok := m.configs[deptID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (m *mockFolderRepo) Create(cfg *model.FolderConfig) error {
	m.configs[cfg.DepartmentID] = cfg
	return nil
}

func (m *mockFolderRepo) UpdateFields(deptID uint, fields map[string]interface{}) error {
	c, ok := m.configs[deptID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["path"]; ok {
		c.Path = v.(string)
	}
	if v, ok := fields["shared_url"]; ok {
		c.SharedURL = v.(string)
	}
	if v, ok := fields["configured"]; ok {
		c.Configured = v.(bool)
	}
	return nil
}

type mockUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newMockUserRepo(users ...*model.User) *mockUserRepo {
	m := &mockUserRepo{users: make(map[uint]*model.User), nextID: 1}
	for _, u := range users {
		m.users[u.ID] = u
		if u.ID >= m.nextID {
			m.nextID = u.ID + 1
		}
	}
	return m
}

func (m *mockUserRepo) Create(user *model.User) error {
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) FindByUsername(username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByID(userID uint) (*model.User, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (m *mockUserRepo) FindAll() ([]model.User, error) {
	var out []model.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockUserRepo) Update(user *model.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Delete(userID uint) error {
	delete(m.users, userID)
	return nil
}

func (m *mockUserRepo) UpdateLastLogin(userID uint, at time.Time) error {
	u, ok := m.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.LastLogin = &at
	return nil
}

func (m *mockUserRepo) Count() (int64, error) {
	return int64(len(m.users)), nil
}

func (m *mockUserRepo) CountByRole(role string) (int64, error) {
	var total int64
	for _, u := range m.users {
		if u.Role == role {
			total++
		}
	}
	return total, nil
}

// recordedActivity 是 activityRecorder 捕获的一次 Record 调用。
type recordedActivity struct {
	message      string
	departmentID *uint
}

// activityRecorder 捕获活动记录调用，避免测试依赖真实的活动存储。
type activityRecorder struct {
	recorded []recordedActivity
}

func (r *activityRecorder) Record(message string, departmentID *uint) {
	r.recorded = append(r.recorded, recordedActivity{message: message, departmentID: departmentID})
}

func (r *activityRecorder) List(departmentID *uint) ([]model.Activity, error) {
	return nil, nil
}

// 测试用的 claims 构造函数。

func adminClaims() *token.CustomClaims {
	return &token.CustomClaims{UserID: 1, Username: "admin@kpmg.com", Role: model.RoleAdmin}
}

func directorClaims(deptID uint) *token.CustomClaims {
	return &token.CustomClaims{UserID: 2, Username: "director1", Role: model.RoleDirector, Department: &deptID}
}
