package database

import (
	"errors"
	"time"

	"fwadmin/internal/domain"

	"gorm.io/gorm"
)

func (s *Store) HostByID(id uint) (domain.Host, error) {
	var host domain.Host
	if err := s.db.First(&host, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Host{}, notFound("host", id)
		}
		return domain.Host{}, storeFailure("load host", err)
	}
	return host, nil
}

func (s *Store) HostsByOwner(ownerID uint) ([]domain.Host, error) {
	var hosts []domain.Host
	if err := s.db.Where("owner_id = ?", ownerID).Order("id ASC").Find(&hosts).Error; err != nil {
		return nil, storeFailure("list hosts by owner", err)
	}
	return hosts, nil
}

// UnapprovedHosts lists hosts waiting for moderation in creation order. The
// ordering is part of the contract; the moderation queue must be stable
// across repeated queries.
func (s *Store) UnapprovedHosts() ([]domain.Host, error) {
	var hosts []domain.Host
	if err := s.db.Where("approved = ?", false).Order("id ASC").Find(&hosts).Error; err != nil {
		return nil, storeFailure("list unapproved hosts", err)
	}
	return hosts, nil
}

func (s *Store) CreateHost(host *domain.Host) error {
	if err := s.db.Create(host).Error; err != nil {
		return storeFailure("create host", err)
	}
	return nil
}

func (s *Store) UpdateHostName(id uint, name string) error {
	return s.updateHostColumn(id, "name", name)
}

func (s *Store) UpdateHostActiveUntil(id uint, until time.Time) error {
	return s.updateHostColumn(id, "active_until", until)
}

func (s *Store) ApproveHost(id uint) error {
	return s.updateHostColumn(id, "approved", true)
}

func (s *Store) updateHostColumn(id uint, column string, value any) error {
	res := s.db.Model(&domain.Host{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return storeFailure("update host "+column, res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("host", id)
	}
	return nil
}

// DeleteHost removes the host and every rule scoped to it in one
// transaction. Either both are gone afterwards or neither is.
func (s *Store) DeleteHost(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("host_id = ?", id).Delete(&domain.ComplexRule{}).Error; err != nil {
			return storeFailure("cascade delete rules", err)
		}

		res := tx.Delete(&domain.Host{}, id)
		if res.Error != nil {
			return storeFailure("delete host", res.Error)
		}
		if res.RowsAffected == 0 {
			return notFound("host", id)
		}
		return nil
	})
	return mapStoreError(err)
}
