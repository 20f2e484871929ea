package service

import (
	"fmt"

	"github.com/SWEConnect/backend/internal/model"
	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

func (s *ProjectService) Create(name, description string, creatorID uint) (*model.Project, error) {
	var count int64
	s.db.Model(&model.Project{}).Where("name = ?", name).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("40005:项目名称已存在")
	}

	project := &model.Project{
		Name:        name,
		Description: description,
	}
	if err := s.db.Create(project).Error; err != nil {
		return nil, err
	}

	// The creator becomes the first admin.
	member := &model.Member{
		ProjectID: project.ID,
		UserID:    creatorID,
		Type:      model.MemberTypeAdmin,
	}
	if err := s.db.Create(member).Error; err != nil {
		return nil, err
	}

	return project, nil
}

// List returns the projects the caller is a member of.
func (s *ProjectService) List(userID uint, keyword string, page, pageSize int) ([]model.Project, int64, error) {
	query := s.db.Model(&model.Project{}).
		Where("id IN (SELECT project_id FROM members WHERE user_id = ?)", userID)
	if keyword != "" {
		query = query.Where("name LIKE ?", "%"+keyword+"%")
	}

	var total int64
	query.Count(&total)

	var projects []model.Project
	if err := query.Order("updated_at desc").
		Offset((page - 1) * pageSize).Limit(pageSize).Find(&projects).Error; err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func (s *ProjectService) GetMemberCount(projectID uint) int64 {
	var count int64
	s.db.Model(&model.Member{}).Where("project_id = ?", projectID).Count(&count)
	return count
}

func (s *ProjectService) GetApplicationCount(projectID uint) int64 {
	var count int64
	s.db.Model(&model.Application{}).Where("project_id = ?", projectID).Count(&count)
	return count
}

func (s *ProjectService) GetByID(id uint) (*model.Project, error) {
	var project model.Project
	if err := s.db.Preload("Members.User").First(&project, id).Error; err != nil {
		return nil, fmt.Errorf("40402:项目不存在")
	}
	return &project, nil
}

func (s *ProjectService) Update(id uint, updates map[string]interface{}) (*model.Project, error) {
	if name, ok := updates["name"]; ok {
		var count int64
		s.db.Model(&model.Project{}).Where("name = ? AND id != ?", name, id).Count(&count)
		if count > 0 {
			return nil, fmt.Errorf("40005:项目名称已存在")
		}
	}
	if err := s.db.Model(&model.Project{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *ProjectService) IsMember(projectID, userID uint) bool {
	var count int64
	s.db.Model(&model.Member{}).Where("project_id = ? AND user_id = ?", projectID, userID).Count(&count)
	return count > 0
}

func (s *ProjectService) AddMembers(projectID uint, userIDs []uint, memberType model.MemberType) ([]model.UserBrief, []uint, error) {
	var added []model.UserBrief
	var skipped []uint

	for _, uid := range userIDs {
		var user model.User
		if err := s.db.First(&user, uid).Error; err != nil {
			return nil, nil, fmt.Errorf("40401:用户不存在: id=%d", uid)
		}

		var count int64
		s.db.Model(&model.Member{}).Where("project_id = ? AND user_id = ?", projectID, uid).Count(&count)
		if count > 0 {
			skipped = append(skipped, uid)
			continue
		}

		member := &model.Member{
			ProjectID: projectID,
			UserID:    uid,
			Type:      memberType,
		}
		if err := s.db.Create(member).Error; err != nil {
			return nil, nil, err
		}
		added = append(added, user.Brief())
	}
	return added, skipped, nil
}

// RemoveMember deletes a membership. An admin cannot remove themself,
// enforced here and not only in the UI.
func (s *ProjectService) RemoveMember(projectID, userID, callerID uint) error {
	if userID == callerID {
		return fmt.Errorf("40003:管理员不能移除自己")
	}

	result := s.db.Where("project_id = ? AND user_id = ?", projectID, userID).Delete(&model.Member{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("40401:该用户不是项目成员")
	}
	return nil
}

// UpdateMemberType changes a member's role. The same self guard applies:
// an admin cannot demote themself.
func (s *ProjectService) UpdateMemberType(projectID, userID, callerID uint, memberType model.MemberType) error {
	if userID == callerID {
		return fmt.Errorf("40003:管理员不能变更自己的角色")
	}

	result := s.db.Model(&model.Member{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Update("type", memberType)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("40401:该用户不是项目成员")
	}
	return nil
}
