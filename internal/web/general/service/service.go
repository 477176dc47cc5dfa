// Package service is the service layer of status checks.
package service

import (
	"context"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	glog "github.com/Laisky/go-utils/v6/log"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Laisky/devhub-api/internal/web/general/dao"
	"github.com/Laisky/devhub-api/internal/web/general/model"
)

const maxStatusChecks = 1000

// General status-check service
type General struct {
	logger glog.Logger
	dao    *dao.General
}

// New new status-check service
func New(logger glog.Logger, dao *dao.General) *General {
	return &General{
		logger: logger,
		dao:    dao,
	}
}

// CreateStatusCheck records a named status check.
func (s *General) CreateStatusCheck(ctx context.Context, clientName string) (*model.StatusCheck, error) {
	check := &model.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  gutils.Clock.GetUTCNow(),
	}

	if _, err := s.dao.GetStatusChecksCol().InsertOne(ctx, check); err != nil {
		return nil, errors.Wrap(err, "insert status check")
	}

	return check, nil
}

// ListStatusChecks returns recorded status checks, capped at 1000.
func (s *General) ListStatusChecks(ctx context.Context) ([]*model.StatusCheck, error) {
	cur, err := s.dao.GetStatusChecksCol().Find(ctx, bson.D{},
		options.Find().SetLimit(maxStatusChecks),
	)
	if err != nil {
		return nil, errors.Wrap(err, "find status checks")
	}
	defer cur.Close(ctx) //nolint:errcheck

	checks := []*model.StatusCheck{}
	if err = cur.All(ctx, &checks); err != nil {
		return nil, errors.Wrap(err, "load status checks")
	}

	return checks, nil
}
