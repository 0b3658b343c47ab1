package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/engine/resolver"
)

func TestResolver_Title(t *testing.T) {
	t.Parallel()

	r := resolver.New(map[string]string{
		"PrintAndFax": "Printers & Scanners",
		"Safari":      "Should Not Apply",
	})

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "plain app", path: "/Applications/Safari.app", want: "Safari"},
		{name: "spaces preserved", path: "/System/Applications/Activity Monitor.app", want: "Activity Monitor"},
		{name: "camel case split", path: "/Applications/Go2Shell.app", want: "Go 2 Shell"},
		{name: "override hit", path: "/System/Library/PreferencePanes/PrintAndFax.prefPane", want: "Printers & Scanners"},
		{name: "override miss keeps stop words", path: "/System/Library/PreferencePanes/DateAndTime.prefPane", want: "Date And Time"},
		{name: "overrides only apply to panes", path: "/Applications/PrintAndFax.app", want: "Print And Fax"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, r.Title(tt.path))
		})
	}
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	r := resolver.New(nil)

	svc, ok := r.Resolve("/System/Applications/Books.app")
	assert.True(t, ok)
	assert.Equal(t, domain.Service{
		Title:    "Books",
		Subtitle: "/System/Applications/Books.app",
		ID:       "/System/Applications/Books.app",
	}, svc)

	_, ok = r.Resolve("/Applications/\xff.app")
	assert.False(t, ok)
}

func TestResolver_ResolveAll(t *testing.T) {
	t.Parallel()

	r := resolver.New(nil)

	got := r.ResolveAll([]string{
		"/Applications/Notes.app",
		"/Applications/\xfe\xff.app",
		"/Applications/Maps.app",
	})

	assert.Equal(t, []domain.Service{
		domain.NewService("Notes", "/Applications/Notes.app"),
		domain.NewService("Maps", "/Applications/Maps.app"),
	}, got)
}
