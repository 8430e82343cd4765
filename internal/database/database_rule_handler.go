package database

import (
	"errors"

	"fwadmin/internal/domain"

	"gorm.io/gorm"
)

func (s *Store) RuleByID(id uint) (domain.ComplexRule, error) {
	var rule domain.ComplexRule
	if err := s.db.First(&rule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ComplexRule{}, notFound("rule", id)
		}
		return domain.ComplexRule{}, storeFailure("load rule", err)
	}
	return rule, nil
}

func (s *Store) RulesByHost(hostID uint) ([]domain.ComplexRule, error) {
	var rules []domain.ComplexRule
	if err := s.db.Where("host_id = ?", hostID).Order("id ASC").Find(&rules).Error; err != nil {
		return nil, storeFailure("list rules for host", err)
	}
	return rules, nil
}

func (s *Store) CreateRule(rule *domain.ComplexRule) error {
	if err := s.db.Create(rule).Error; err != nil {
		return storeFailure("create rule", err)
	}
	return nil
}

func (s *Store) DeleteRule(id uint) error {
	res := s.db.Delete(&domain.ComplexRule{}, id)
	if res.Error != nil {
		return storeFailure("delete rule", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("rule", id)
	}
	return nil
}
