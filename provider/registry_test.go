package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/appkit-go/appkit/di"
)

// recordingProvider tracks lifecycle calls into a shared journal.
type recordingProvider struct {
	name    string
	journal *[]string
	bootErr error
}

func (p *recordingProvider) Name() string { return p.name }

func (p *recordingProvider) Register(container di.Container) error {
	*p.journal = append(*p.journal, "register:"+p.name)
	container.Set(p.name, "service-"+p.name, true)
	return nil
}

func (p *recordingProvider) Boot(ctx context.Context, container di.Container) error {
	*p.journal = append(*p.journal, "boot:"+p.name)
	return p.bootErr
}

func (p *recordingProvider) Shutdown(ctx context.Context) error {
	*p.journal = append(*p.journal, "shutdown:"+p.name)
	return nil
}

func TestAddDuplicate(t *testing.T) {
	var journal []string
	r := NewRegistry()
	if err := r.Add(&recordingProvider{name: "cache", journal: &journal}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Add(&recordingProvider{name: "cache", journal: &journal}); err == nil {
		t.Error("expected duplicate registration to fail")
	}
}

func TestLifecycleOrdering(t *testing.T) {
	var journal []string
	r := NewRegistry()
	for _, name := range []string{"db", "cache", "mailer"} {
		if err := r.Add(&recordingProvider{name: name, journal: &journal}); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}

	container := di.NewContainer()
	if err := r.BootAll(context.Background(), container); err != nil {
		t.Fatalf("boot: %v", err)
	}
	if err := r.ShutdownAll(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	want := []string{
		"register:db", "register:cache", "register:mailer",
		"boot:db", "boot:cache", "boot:mailer",
		"shutdown:mailer", "shutdown:cache", "shutdown:db",
	}
	if len(journal) != len(want) {
		t.Fatalf("expected %d events, got %v", len(want), journal)
	}
	for i, event := range want {
		if journal[i] != event {
			t.Errorf("event %d: expected %q, got %q", i, event, journal[i])
		}
	}

	for _, name := range []string{"db", "cache", "mailer"} {
		if !container.Has(name) {
			t.Errorf("expected service %q registered", name)
		}
	}
}

func TestBootFailureStopsRun(t *testing.T) {
	var journal []string
	r := NewRegistry()
	r.Add(&recordingProvider{name: "first", journal: &journal})
	r.Add(&recordingProvider{name: "broken", journal: &journal, bootErr: errors.New("no backend")})
	r.Add(&recordingProvider{name: "last", journal: &journal})

	err := r.BootAll(context.Background(), di.NewContainer())
	if err == nil {
		t.Fatal("expected boot failure")
	}
	for _, event := range journal {
		if event == "boot:last" {
			t.Error("expected boot to stop at the failing provider")
		}
	}

	// Only booted providers shut down.
	journal = journal[:0]
	if err := r.ShutdownAll(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if len(journal) != 1 || journal[0] != "shutdown:first" {
		t.Errorf("expected only the booted provider to shut down, got %v", journal)
	}
}

func TestFuncProvider(t *testing.T) {
	registered := false
	booted := false
	p := &Func{
		ProviderName: "inline",
		RegisterFunc: func(container di.Container) error {
			registered = true
			return nil
		},
		BootFunc: func(ctx context.Context, container di.Container) error {
			booted = true
			return nil
		},
	}

	r := NewRegistry()
	if err := r.Add(p); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := r.BootAll(context.Background(), di.NewContainer()); err != nil {
		t.Fatalf("boot: %v", err)
	}
	if !registered || !booted {
		t.Errorf("expected both phases to run, registered=%v booted=%v", registered, booted)
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("nil ShutdownFunc should be a no-op, got %v", err)
	}
}

func TestGetAndAll(t *testing.T) {
	var journal []string
	r := NewRegistry()
	r.Add(&recordingProvider{name: "one", journal: &journal})
	r.Add(&recordingProvider{name: "two", journal: &journal})

	if p := r.Get("one"); p == nil || p.Name() != "one" {
		t.Errorf("expected provider one, got %v", p)
	}
	if p := r.Get("missing"); p != nil {
		t.Errorf("expected nil for unknown provider, got %v", p)
	}

	all := r.All()
	if len(all) != 2 || all[0].Name() != "one" || all[1].Name() != "two" {
		t.Errorf("expected registration order, got %v", all)
	}
}
