package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"brrr-bot/backend/internal/tools"
)

const memberPageSize = 1000

// MemberDirectory resolves guild members through the Discord session so
// tools can look up user IDs when no mention was provided
type MemberDirectory struct {
	session *discordgo.Session
}

// NewMemberDirectory creates a directory backed by the given session
func NewMemberDirectory(session *discordgo.Session) *MemberDirectory {
	return &MemberDirectory{session: session}
}

// LookupMember finds a guild member by username, global name, or nickname.
// Matching is case insensitive and falls back to prefix matches.
func (d *MemberDirectory) LookupMember(guildID, query string) (*tools.Member, error) {
	if guildID == "" {
		return nil, fmt.Errorf("member lookup requires a guild")
	}

	members, err := d.session.GuildMembers(guildID, "", memberPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild members: %w", err)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	var prefixMatch *tools.Member

	for _, member := range members {
		candidate := toMember(member)
		for _, name := range []string{member.User.Username, member.User.GlobalName, member.Nick} {
			name = strings.ToLower(name)
			if name == "" {
				continue
			}
			if name == query {
				return &candidate, nil
			}
			if prefixMatch == nil && strings.HasPrefix(name, query) {
				m := candidate
				prefixMatch = &m
			}
		}
	}

	if prefixMatch != nil {
		return prefixMatch, nil
	}
	return nil, fmt.Errorf("no member matching %q", query)
}

// ListMembers returns up to limit guild members, bots excluded
func (d *MemberDirectory) ListMembers(guildID string, limit int) ([]tools.Member, error) {
	if guildID == "" {
		return nil, fmt.Errorf("member listing requires a guild")
	}

	members, err := d.session.GuildMembers(guildID, "", memberPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild members: %w", err)
	}

	result := make([]tools.Member, 0, len(members))
	for _, member := range members {
		if member.User.Bot {
			continue
		}
		result = append(result, toMember(member))
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, nil
}

func toMember(member *discordgo.Member) tools.Member {
	display := member.Nick
	if display == "" {
		display = member.User.GlobalName
	}
	if display == "" {
		display = member.User.Username
	}
	return tools.Member{
		ID:          member.User.ID,
		Username:    member.User.Username,
		DisplayName: display,
	}
}
