// Package service is the service layer of community channels and messages.
package service

import (
	"context"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	glog "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Laisky/devhub-api/internal/web/community/dao"
	"github.com/Laisky/devhub-api/internal/web/community/dto"
	"github.com/Laisky/devhub-api/internal/web/community/model"
	"github.com/Laisky/devhub-api/library/rest"
)

const (
	defaultMessagePageSize = 50
	maxMessagePageSize     = 200

	// maxChannels is a soft cap, channel listing is not paginated.
	maxChannels = 1000
)

// Community community service
type Community struct {
	logger glog.Logger
	dao    *dao.Community
}

// New new community service
func New(logger glog.Logger, dao *dao.Community) *Community {
	return &Community{
		logger: logger,
		dao:    dao,
	}
}

// CreateChannel inserts a new channel. Channels are append-only,
// there is no update or delete.
func (s *Community) CreateChannel(ctx context.Context, req dto.NewChannel) (*model.Channel, error) {
	now := gutils.Clock.GetUTCNow()
	ch := &model.Channel{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		Name:      req.Name,
	}

	if _, err := s.dao.GetChannelsCol().InsertOne(ctx, ch); err != nil {
		return nil, errors.Wrap(err, "insert channel")
	}

	s.logger.Debug("created channel", zap.String("name", ch.Name))
	return ch, nil
}

// ListChannels returns all channels sorted by name ascending.
func (s *Community) ListChannels(ctx context.Context) ([]*model.Channel, error) {
	cur, err := s.dao.GetChannelsCol().Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}),
		options.Find().SetLimit(maxChannels),
	)
	if err != nil {
		return nil, errors.Wrap(err, "find channels")
	}
	defer cur.Close(ctx) //nolint:errcheck

	channels := []*model.Channel{}
	if err = cur.All(ctx, &channels); err != nil {
		return nil, errors.Wrap(err, "load channels")
	}

	return channels, nil
}

// CreateMessage inserts a new message. The channel reference is not
// checked against the channels collection, dangling references are allowed.
func (s *Community) CreateMessage(ctx context.Context, req dto.NewMessage) (*model.Message, error) {
	now := gutils.Clock.GetUTCNow()
	msg := &model.Message{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		Channel:   req.Channel,
		Author:    req.Author,
		Text:      req.Text,
		Ts:        now,
	}

	if _, err := s.dao.GetMessagesCol().InsertOne(ctx, msg); err != nil {
		return nil, errors.Wrap(err, "insert message")
	}

	s.logger.Debug("created message",
		zap.String("channel", msg.Channel),
		zap.String("id", msg.ID))
	return msg, nil
}

// ListMessages loads one page of a channel's messages, oldest first.
// The channel parameter is required.
func (s *Community) ListMessages(ctx context.Context, q dto.ListMessagesQuery) (*rest.Paged, error) {
	if q.Channel == "" {
		return nil, errors.Wrap(rest.ErrValidation, "channel is required")
	}

	pag := q.Pagination.Sanitize(defaultMessagePageSize, maxMessagePageSize)
	filter := bson.D{{Key: "channel", Value: q.Channel}}

	col := s.dao.GetMessagesCol()
	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "count messages")
	}

	cur, err := col.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "ts", Value: 1}}),
		options.Find().SetSkip(pag.Skip()),
		options.Find().SetLimit(int64(pag.Limit)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "find messages")
	}
	defer cur.Close(ctx) //nolint:errcheck

	items := []*model.Message{}
	if err = cur.All(ctx, &items); err != nil {
		return nil, errors.Wrap(err, "load messages")
	}

	return &rest.Paged{
		Items: items,
		Page:  pag.Page,
		Limit: pag.Limit,
		Total: total,
	}, nil
}
