package database

import (
	"context"

	"fwadmin/internal/domain"
)

// DeleteOrphanRules removes rules whose host no longer exists. Host deletion
// cascades rules in the same transaction, so under normal operation this
// finds nothing; it is an integrity backstop for rows written by older
// versions or external tooling.
func DeleteOrphanRules(ctx context.Context) (int64, error) {
	res := DB.WithContext(ctx).
		Where("host_id NOT IN (SELECT id FROM hosts)").
		Delete(&domain.ComplexRule{})
	return res.RowsAffected, res.Error
}

// DeleteOrphanMemberships removes group membership rows pointing at deleted
// users or groups.
func DeleteOrphanMemberships(ctx context.Context) (int64, error) {
	res := DB.WithContext(ctx).
		Where("user_id NOT IN (SELECT id FROM users) OR group_id NOT IN (SELECT id FROM groups)").
		Delete(&domain.UserGroup{})
	return res.RowsAffected, res.Error
}
