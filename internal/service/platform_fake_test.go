package service

import (
	"context"

	"github.com/spec-kit/ticket-bot/internal/domain"
)

type deletedChannel struct {
	ID     string
	Reason string
}

type postedNotice struct {
	ChannelID string
	Notice    domain.ReviewNotice
}

// fakeClient implements platform.Client for service tests.
type fakeClient struct {
	role       *domain.Role
	roleErr    error
	channel    *domain.ChannelRef
	channelErr error
	categoryID string
	existing   *domain.ChannelRef

	createErr error
	createdAs *domain.ChannelRef
	created   []domain.TicketChannelSpec

	deleteErr error
	deleted   []deletedChannel

	greetings []string
	panels    []string
	panelErr  error

	noticeErr error
	notices   []postedNotice
}

func (f *fakeClient) ResolveRole(ctx context.Context, guildID, roleID string) (*domain.Role, error) {
	return f.role, f.roleErr
}

func (f *fakeClient) ResolveChannel(ctx context.Context, channelID string) (*domain.ChannelRef, error) {
	return f.channel, f.channelErr
}

func (f *fakeClient) EnsureTicketCategory(ctx context.Context, guildID, name string) (string, error) {
	if f.categoryID == "" {
		f.categoryID = "category-1"
	}
	return f.categoryID, nil
}

func (f *fakeClient) FindTicketChannel(ctx context.Context, guildID, categoryID, name string) (*domain.ChannelRef, error) {
	return f.existing, nil
}

func (f *fakeClient) CreateTicketChannel(ctx context.Context, guildID string, spec domain.TicketChannelSpec) (*domain.ChannelRef, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, spec)
	if f.createdAs != nil {
		return f.createdAs, nil
	}
	return &domain.ChannelRef{ID: "channel-1", Name: spec.Name}, nil
}

func (f *fakeClient) DeleteChannel(ctx context.Context, channelID, reason string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, deletedChannel{ID: channelID, Reason: reason})
	return nil
}

func (f *fakeClient) PostGreeting(ctx context.Context, channelID string, actor domain.Actor) error {
	f.greetings = append(f.greetings, channelID)
	return nil
}

func (f *fakeClient) PostPanel(ctx context.Context, channelID string) error {
	if f.panelErr != nil {
		return f.panelErr
	}
	f.panels = append(f.panels, channelID)
	return nil
}

func (f *fakeClient) PostNotice(ctx context.Context, channelID string, notice domain.ReviewNotice) error {
	if f.noticeErr != nil {
		return f.noticeErr
	}
	f.notices = append(f.notices, postedNotice{ChannelID: channelID, Notice: notice})
	return nil
}
