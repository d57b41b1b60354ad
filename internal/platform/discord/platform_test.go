package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/diegoclair/birthday-bot/internal/domain/contract"
	"github.com/diegoclair/birthday-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rewriteTransport sends every API request to the test server
type rewriteTransport struct {
	target *url.URL
}

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.URL.Scheme = t.target.Scheme
	req.URL.Host = t.target.Host
	req.Host = t.target.Host
	return http.DefaultTransport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	target, err := url.Parse(srv.URL)
	require.NoError(t, err)

	c, err := New("test-token")
	require.NoError(t, err)
	c.session.Client = &http.Client{Transport: rewriteTransport{target: target}}
	c.session.MaxRestRetries = 0

	return c
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	assert.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestClient_ResolveChannel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/channels/C1"):
			writeJSON(t, w, http.StatusOK, map[string]any{"id": "C1", "guild_id": "G1", "name": "birthdays", "type": 0})
		case strings.HasSuffix(r.URL.Path, "/channels/C404"):
			writeJSON(t, w, http.StatusNotFound, map[string]any{"message": "Unknown Channel", "code": discordgo.ErrCodeUnknownChannel})
		default:
			writeJSON(t, w, http.StatusInternalServerError, map[string]any{"message": "boom", "code": 0})
		}
	})
	ctx := context.Background()

	ch, err := c.ResolveChannel(ctx, "C1")
	require.NoError(t, err)
	require.NotNil(t, ch)
	assert.Equal(t, entity.Channel{ID: "C1", GuildID: "G1", Name: "birthdays"}, *ch)

	missing, err := c.ResolveChannel(ctx, "C404")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = c.ResolveChannel(ctx, "C500")
	assert.ErrorIs(t, err, domain.ErrExternalService)
}

func TestClient_ListRoleMembers(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/guilds/G1/members"))
		calls++

		var members []map[string]any
		if r.URL.Query().Get("after") == "" {
			for i := 0; i < memberPageSize; i++ {
				roles := []string{}
				if i == 3 {
					roles = []string{"R1"}
				}
				members = append(members, map[string]any{
					"user":  map[string]any{"id": fmt.Sprintf("U%04d", i)},
					"roles": roles,
				})
			}
		} else {
			assert.Equal(t, fmt.Sprintf("U%04d", memberPageSize-1), r.URL.Query().Get("after"))
			members = []map[string]any{
				{"user": map[string]any{"id": "LAST"}, "roles": []string{"R2", "R1"}},
			}
		}
		writeJSON(t, w, http.StatusOK, members)
	})

	holders, err := c.ListRoleMembers(context.Background(), "G1", "R1")
	require.NoError(t, err)
	assert.Equal(t, []string{"U0003", "LAST"}, holders)
	assert.Equal(t, 2, calls)
}

func TestClient_FetchRole(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []map[string]any{
			{"id": "R1", "name": "Birthday"},
			{"id": "R2", "name": "Mods"},
		})
	})

	role, err := c.FetchRole(context.Background(), "G1", "R1")
	require.NoError(t, err)
	require.NotNil(t, role)
	assert.Equal(t, "Birthday", role.Name)

	none, err := c.FetchRole(context.Background(), "G1", "R9")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestClient_RoleChanges(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/members/GONE/"):
			writeJSON(t, w, http.StatusNotFound, map[string]any{"message": "Unknown Member", "code": discordgo.ErrCodeUnknownMember})
		case strings.Contains(r.URL.Path, "/members/DENIED/"):
			writeJSON(t, w, http.StatusForbidden, map[string]any{"message": "Missing Permissions", "code": discordgo.ErrCodeMissingPermissions})
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	})
	ctx := context.Background()

	assert.NoError(t, c.AddRole(ctx, "G1", "U1", "R1"))
	assert.NoError(t, c.RemoveRole(ctx, "G1", "U1", "R1"))
	assert.ErrorIs(t, c.AddRole(ctx, "G1", "GONE", "R1"), contract.ErrMemberNotFound)
	assert.ErrorIs(t, c.RemoveRole(ctx, "G1", "GONE", "R1"), contract.ErrMemberNotFound)
	assert.ErrorIs(t, c.AddRole(ctx, "G1", "DENIED", "R1"), domain.ErrExternalService)
}

func TestClient_SendAnnouncement(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/channels/C1/messages"))

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(raw, &body))

		writeJSON(t, w, http.StatusOK, map[string]any{"id": "M1", "channel_id": "C1"})
	})

	age := 35
	err := c.SendAnnouncement(context.Background(), &entity.Channel{ID: "C1"}, entity.Announcement{UserID: "U1", Username: "Alice", Age: &age})
	require.NoError(t, err)

	assert.Equal(t, "@everyone", body["content"])
	embeds, ok := body["embeds"].([]any)
	require.True(t, ok)
	require.Len(t, embeds, 1)
	embed := embeds[0].(map[string]any)
	assert.Equal(t, domain.AnnouncementTitle, embed["title"])
	assert.Contains(t, embed["description"], "**Happy Birthday Alice!**")
	assert.Contains(t, embed["description"], "**35**")
}

func TestAnnouncementEmbed_TestFooter(t *testing.T) {
	embed := announcementEmbed(entity.Announcement{Username: domain.TestUsername, Test: true}, time.Now())
	require.NotNil(t, embed.Footer)
	assert.Equal(t, domain.TestAnnouncementFooter, embed.Footer.Text)

	regular := announcementEmbed(entity.Announcement{Username: "Alice"}, time.Now())
	assert.Nil(t, regular.Footer)
	assert.Equal(t, domain.AnnouncementImageURL, regular.Image.URL)
}

func TestClient_ConnectionState(t *testing.T) {
	c, err := New("test-token")
	require.NoError(t, err)

	var changes []bool
	c.OnStateChange(func(connected bool) { changes = append(changes, connected) })

	assert.False(t, c.IsConnected())
	assert.False(t, c.Status(context.Background()).Connected)

	c.setConnected(true)
	c.setConnected(true)
	assert.True(t, c.IsConnected())

	c.setConnected(false)
	assert.Equal(t, []bool{true, false}, changes)
	assert.Equal(t, domain.PlatformDiscord, c.Name())
}

func TestCommands(t *testing.T) {
	cmds := Commands(2025)
	require.Len(t, cmds, 4)

	names := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		names = append(names, cmd.Name)
	}
	assert.Equal(t, []string{
		domain.CommandSetBirthday, domain.CommandMyBirthday,
		domain.CommandListBirthdays, domain.CommandTestBirthday,
	}, names)

	set := cmds[0]
	require.Len(t, set.Options, 3)
	assert.True(t, set.Options[0].Required)
	assert.False(t, set.Options[2].Required)
	assert.Equal(t, float64(2025), set.Options[2].MaxValue)
	assert.NotNil(t, cmds[2].DefaultMemberPermissions)
	assert.Nil(t, cmds[1].DefaultMemberPermissions)
}
