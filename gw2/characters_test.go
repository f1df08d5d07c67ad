package gw2

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacterNames(t *testing.T) {
	client := testClient(t, "/v2/characters", http.StatusOK, `["First Character","Second Character"]`)

	names, err := client.CharacterNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"First Character", "Second Character"}, names)
}

func TestCharacterNameIsEscaped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Character names contain spaces and must be percent-encoded
		assert.Equal(t, "/v2/characters/First%20Character/core", r.URL.EscapedPath())
		w.Write([]byte(`{"name":"First Character","race":"Asura","gender":"Female","profession":"Engineer","level":80,"age":1000,"created":"2013-04-25T22:10:00Z","deaths":42}`))
	}))
	defer server.Close()

	client := NewClient("en", WithBaseURL(server.URL), WithToken("test-token"))

	core, err := client.CharacterCore(context.Background(), "First Character")
	require.NoError(t, err)
	assert.Equal(t, "Engineer", core.Profession)
	assert.Equal(t, 42, core.Deaths)
}

func TestCharacter(t *testing.T) {
	body := `{
		"backstory": ["186-161"],
		"name": "Gorrik",
		"race": "Charr",
		"gender": "Male",
		"profession": "Necromancer",
		"level": 80,
		"age": 500000,
		"created": "2015-10-23T10:00:00Z",
		"deaths": 12,
		"crafting": [{"discipline": "Chef", "rating": 400, "active": true}],
		"equipment": [{"id": 1234, "slot": "Coat", "dyes": [473, null, null, null]}],
		"equipment_pvp": {"amulet": 4, "rune": 21, "sigils": [2, 3, null, null]},
		"bags": [{"id": 8932, "size": 20, "inventory": [null, {"id": 19710, "count": 120}]}],
		"recipes": [104, 105],
		"skills": {
			"pve": {"heal": 5503, "utilities": [5641, 5734, 5861], "elite": 5516},
			"pvp": {"heal": 5503, "utilities": [5641, 5734, 5861], "elite": 5516},
			"wvw": {"heal": 5503, "utilities": [5641, 5734, 5861], "elite": 5516}
		},
		"specializations": {
			"pve": [{"id": 53, "traits": [818, 838, 851]}],
			"pvp": [],
			"wvw": []
		},
		"training": [{"id": 60, "spent": 20, "done": true}],
		"wvw_abilities": [{"id": 2, "rank": 1}]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/characters/Gorrik", r.URL.Path)
		w.Write([]byte(body))
	}))
	defer server.Close()

	client := NewClient("en", WithBaseURL(server.URL), WithToken("test-token"))

	character, err := client.Character(context.Background(), "Gorrik")
	require.NoError(t, err)
	assert.Equal(t, "Necromancer", character.Profession)

	require.Len(t, character.Equipment, 1)
	require.Len(t, character.Equipment[0].Dyes, 4)
	require.NotNil(t, character.Equipment[0].Dyes[0])
	assert.Equal(t, 473, *character.Equipment[0].Dyes[0])
	assert.Nil(t, character.Equipment[0].Dyes[1])

	require.Len(t, character.Bags, 1)
	assert.Nil(t, character.Bags[0].Inventory[0])
	assert.Equal(t, 120, character.Bags[0].Inventory[1].Count)

	assert.Equal(t, 5503, character.Skills.PvE.Heal)
	require.Len(t, character.Specializations.PvE, 1)
	assert.True(t, character.Training[0].Done)
}

func TestCharacterNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"text":"no such character"}`))
	}))
	defer server.Close()

	client := NewClient("en", WithBaseURL(server.URL), WithToken("test-token"))

	_, err := client.Character(context.Background(), "Nobody")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsNotFound())
}

func TestCharacterHeroPoints(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/characters/Gorrik/heropoints", r.URL.Path)
		w.Write([]byte(`["0-2","0-12","1-31"]`))
	}))
	defer server.Close()

	client := NewClient("en", WithBaseURL(server.URL), WithToken("test-token"))

	points, err := client.CharacterHeroPoints(context.Background(), "Gorrik")
	require.NoError(t, err)
	assert.Len(t, points, 3)
}

func TestCharacterEquipmentAttributes(t *testing.T) {
	body := `{"equipment":[{
		"id": 1234,
		"slot": "WeaponA1",
		"stats": {"id": 161, "attributes": {"Power": 251, "Precision": 179, "CritDamage": 179}}
	}]}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/characters/Gorrik/equipment", r.URL.Path)
		w.Write([]byte(body))
	}))
	defer server.Close()

	client := NewClient("en", WithBaseURL(server.URL), WithToken("test-token"))

	equipment, err := client.CharacterEquipment(context.Background(), "Gorrik")
	require.NoError(t, err)
	require.Len(t, equipment.Equipment, 1)

	stats := equipment.Equipment[0].Stats
	require.NotNil(t, stats)
	require.NotNil(t, stats.Attributes)
	assert.Equal(t, 251, stats.Attributes.Power)
	assert.Equal(t, 179, stats.Attributes.CriticalDamage)
}

func TestCharacterSAB(t *testing.T) {
	body := `{
		"zones": [{"id": 1, "mode": "normal", "world": 1, "zone": 1}],
		"unlocks": [{"id": 1, "name": "chain_stick"}],
		"songs": [{"id": 1, "name": "secret_song"}]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/characters/Gorrik/sab", r.URL.Path)
		w.Write([]byte(body))
	}))
	defer server.Close()

	client := NewClient("en", WithBaseURL(server.URL), WithToken("test-token"))

	progress, err := client.CharacterSAB(context.Background(), "Gorrik")
	require.NoError(t, err)
	require.Len(t, progress.Zones, 1)
	assert.Equal(t, "normal", progress.Zones[0].Mode)
	assert.Equal(t, "chain_stick", progress.Unlocks[0].Name)
}

func TestCharacterEndpointsRequireToken(t *testing.T) {
	client := NewClient("en")

	_, err := client.CharacterNames(context.Background())
	require.ErrorIs(t, err, ErrNoToken)

	_, err = client.Character(context.Background(), "Gorrik")
	require.ErrorIs(t, err, ErrNoToken)
}
