package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sheet/internal/core/domain"
)

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.Position
		wantErr bool
	}{
		{in: "", want: domain.PositionPrepend},
		{in: "prepend", want: domain.PositionPrepend},
		{in: "append", want: domain.PositionAppend},
		{in: "middle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParsePosition(tt.in)
			if tt.wantErr {
				require.ErrorContains(t, err, domain.ErrInvalidPosition.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMode(t *testing.T) {
	mode, err := domain.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeProduction, mode)

	mode, err = domain.ParseMode("development")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeDevelopment, mode)

	_, err = domain.ParseMode("staging")
	require.ErrorContains(t, err, domain.ErrInvalidMode.Error())
}

func TestAutoImport_Lookup_FirstMatchWins(t *testing.T) {
	ai := &domain.AutoImport{Bindings: []domain.Binding{
		{BaseClass: "LitElement", StyleProperty: "styles"},
		{BaseClass: "Base", StyleProperty: "sheets", Position: domain.PositionAppend},
		{BaseClass: "LitElement", StyleProperty: "other"},
	}}

	b, ok := ai.Lookup("LitElement")
	require.True(t, ok)
	assert.Equal(t, "styles", b.StyleProperty)

	b, ok = ai.Lookup("Base")
	require.True(t, ok)
	assert.True(t, b.IsAppend())

	_, ok = ai.Lookup("HTMLElement")
	assert.False(t, ok)
}

func TestAutoImport_NilSafe(t *testing.T) {
	var ai *domain.AutoImport
	_, ok := ai.Lookup("LitElement")
	assert.False(t, ok)
	assert.False(t, ai.Enabled())
}

func TestLayout(t *testing.T) {
	assert.True(t, domain.IsSourceExt(".ts"))
	assert.True(t, domain.IsSourceExt(".mjsx"))
	assert.False(t, domain.IsSourceExt(".css"))
	assert.False(t, domain.IsSourceExt(".html"))

	assert.Equal(t, "/src/index.html", domain.StripQuery("/src/index.html?html-proxy&index=0.js"))
	assert.Equal(t, "/src/a.ts", domain.StripQuery("/src/a.ts"))

	assert.Equal(t, "/src/my-button.css", domain.SiblingSheetPath("/src/my-button.ts"))
	assert.Equal(t, "/src/a.stylesheet", domain.VirtualID("/src/a.css"))
}

func TestMinifyStats(t *testing.T) {
	var stats domain.MinifyStats
	stats.Add(100, 60)
	stats.Add(50, 45)

	assert.Equal(t, int64(150), stats.Before())
	assert.Equal(t, int64(105), stats.After())
	assert.Equal(t, int64(45), stats.Saved())
	assert.Equal(t, "minified css sheets by 45 bytes (before: 150, after: 105)", stats.Summary())
}

func TestClass_StaticMember(t *testing.T) {
	c := domain.Class{Members: []domain.Member{
		{Name: "styles", Static: false},
		{Name: "styles", Static: true, Span: domain.Span{Start: 10, End: 20}},
	}}

	m, ok := c.StaticMember("styles")
	require.True(t, ok)
	assert.Equal(t, 10, m.Span.Start)

	_, ok = c.StaticMember("sheets")
	assert.False(t, ok)
}
