package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/diegoclair/birthday-bot/internal/domain/entity"
	"github.com/diegoclair/birthday-bot/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int { return &v }

func newCommandHandlerTest(t *testing.T) (*CommandHandler, *mocks.MockBirthdayService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	service := mocks.NewMockBirthdayService(ctrl)
	return NewCommandHandler(service, "C1", DiscordStyle), service
}

func TestCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name      string
		cmd       Command
		buildMock func(service *mocks.MockBirthdayService)
		wantKind  ReplyKind
		wantTitle string
		wantText  string
	}{
		{
			name: "Should confirm a birthday without year",
			cmd:  Command{Name: domain.CommandSetBirthday, UserID: "U1", Username: "alice", Day: 15, Month: 6},
			buildMock: func(service *mocks.MockBirthdayService) {
				service.EXPECT().SetBirthday(gomock.Any(), "U1", "alice", 15, 6, nil).
					Return(&entity.Birthday{UserID: "U1", Day: 15, Month: 6}, nil)
			},
			wantKind:  ReplySuccess,
			wantTitle: "🎂 Birthday Set Successfully!",
			wantText:  "Your birthday has been set to **June 15**",
		},
		{
			name: "Should hide storage errors behind a generic message",
			cmd:  Command{Name: domain.CommandSetBirthday, UserID: "U1", Day: 1, Month: 1},
			buildMock: func(service *mocks.MockBirthdayService) {
				service.EXPECT().SetBirthday(gomock.Any(), "U1", "", 1, 1, nil).
					Return(nil, domain.StorageError("set birthday", assert.AnError))
			},
			wantKind: ReplyError,
			wantText: "❌ An error occurred while setting your birthday. Please try again.",
		},
		{
			name: "Should show the registered birthday",
			cmd:  Command{Name: domain.CommandMyBirthday, UserID: "U1"},
			buildMock: func(service *mocks.MockBirthdayService) {
				service.EXPECT().GetBirthday(gomock.Any(), "U1").
					Return(&entity.Birthday{UserID: "U1", Day: 15, Month: 6, Year: intPtr(1990)}, nil)
			},
			wantKind:  ReplyInfo,
			wantTitle: "🎂 Your Birthday",
			wantText:  "Your birthday is set to **June 15, 1990**",
		},
		{
			name: "Should point to the set command when nothing is registered",
			cmd:  Command{Name: domain.CommandMyBirthday, UserID: "U1"},
			buildMock: func(service *mocks.MockBirthdayService) {
				service.EXPECT().GetBirthday(gomock.Any(), "U1").Return(nil, nil)
			},
			wantKind: ReplyError,
			wantText: "❌ You haven't set your birthday yet! Use `/setbirthday` to set it.",
		},
		{
			name: "Should report an empty birthday list",
			cmd:  Command{Name: domain.CommandListBirthdays, UserID: "U1", Privileged: true},
			buildMock: func(service *mocks.MockBirthdayService) {
				service.EXPECT().ListBirthdays(gomock.Any()).Return(nil, nil)
			},
			wantKind: ReplyInfo,
			wantText: "📅 No birthdays have been set yet!",
		},
		{
			name:     "Should refuse privileged commands",
			cmd:      Command{Name: domain.CommandTestBirthday, UserID: "U1"},
			wantKind: ReplyError,
			wantText: "❌ You need administrator permissions to use this command.",
		},
		{
			name: "Should report a missing announcement channel",
			cmd:  Command{Name: domain.CommandTestBirthday, UserID: "U1", Privileged: true},
			buildMock: func(service *mocks.MockBirthdayService) {
				service.EXPECT().SendTestAnnouncement(gomock.Any()).
					Return(nil, domain.ExternalError("resolve announcement channel C1", domain.ErrChannelNotFound))
			},
			wantKind: ReplyError,
			wantText: "❌ Birthday channel not found! Please check your configuration.",
		},
		{
			name: "Should report other test announcement failures",
			cmd:  Command{Name: domain.CommandTestBirthday, UserID: "U1", Privileged: true},
			buildMock: func(service *mocks.MockBirthdayService) {
				service.EXPECT().SendTestAnnouncement(gomock.Any()).
					Return(nil, domain.ExternalError("send announcement", assert.AnError))
			},
			wantKind: ReplyError,
			wantText: "❌ An error occurred while sending the test birthday message.",
		},
		{
			name:     "Should reject unknown commands",
			cmd:      Command{Name: "dance", UserID: "U1"},
			wantKind: ReplyError,
			wantText: "❌ Unknown command.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, service := newCommandHandlerTest(t)
			if tt.buildMock != nil {
				tt.buildMock(service)
			}

			reply := h.Handle(context.Background(), tt.cmd)

			assert.Equal(t, tt.wantKind, reply.Kind)
			assert.Equal(t, tt.wantTitle, reply.Title)
			assert.Equal(t, tt.wantText, reply.Text)
		})
	}
}

func TestCommandHandler_RateLimit(t *testing.T) {
	h, _ := newCommandHandlerTest(t)
	ctx := context.Background()

	for i := 0; i < commandRateBurst; i++ {
		reply := h.Handle(ctx, Command{Name: domain.CommandHelp, UserID: "U1"})
		assert.Equal(t, ReplyInfo, reply.Kind)
	}

	blocked := h.Handle(ctx, Command{Name: domain.CommandHelp, UserID: "U1"})
	assert.Equal(t, ReplyError, blocked.Kind)
	assert.Contains(t, blocked.Text, "slow down")

	other := h.Handle(ctx, Command{Name: domain.CommandHelp, UserID: "U2"})
	assert.Equal(t, ReplyInfo, other.Kind, "limits are per user")
}

func TestUserLimiter_Refill(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	l := newUserLimiter(2*time.Second, 1)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("U1"))
	assert.False(t, l.Allow("U1"))

	now = now.Add(2 * time.Second)
	assert.True(t, l.Allow("U1"))
}

func TestUserLimiter_DropsIdleUsers(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	l := newUserLimiter(time.Second, 1)
	l.now = func() time.Time { return now }

	l.Allow("U1")
	now = now.Add(idleLimiterTTL + time.Minute)
	l.Allow("U2")

	_, ok := l.limiters["U1"]
	assert.False(t, ok)
	assert.Len(t, l.limiters, 1)
}

func TestReply_Color(t *testing.T) {
	assert.Equal(t, 0x00FF00, Reply{Kind: ReplySuccess}.Color())
	assert.Equal(t, 0x0099FF, Reply{Kind: ReplyInfo}.Color())
	assert.Equal(t, 0xFFD700, Reply{Kind: ReplyList}.Color())
	assert.Equal(t, 0xFF0000, Reply{Kind: ReplyError}.Color())
}
