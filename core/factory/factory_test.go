package factory

import "testing"

type sink struct{ Addr string }

type sinkConf struct {
	Addr  string `json:"addr"`
	Batch int    `json:"batch"`
}

func TestRegistry_Create(t *testing.T) {
	reg := NewRegistry[*sink]()
	if err := reg.Register("influx", func(conf map[string]any) (*sink, error) {
		var c sinkConf
		if err := Decode(conf, &c); err != nil {
			return nil, err
		}
		return &sink{Addr: c.Addr}, nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	inst, err := reg.Create(ModuleConfig{Type: "influx", Conf: map[string]any{"addr": "http://db:8086"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if inst.Addr != "http://db:8086" {
		t.Fatalf("unexpected addr %s", inst.Addr)
	}
}

func TestRegistry_Errors(t *testing.T) {
	reg := NewRegistry[int]()
	if err := reg.Register("x", func(map[string]any) (int, error) { return 1, nil }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register("x", func(map[string]any) (int, error) { return 2, nil }); err == nil {
		t.Fatal("expected duplicate error")
	}
	if err := reg.Register("y", nil); err == nil {
		t.Fatal("expected nil factory error")
	}
	if _, err := reg.Create(ModuleConfig{Type: "z"}); err == nil {
		t.Fatal("expected unknown type error")
	}
	if names := reg.Names(); len(names) != 1 || names[0] != "x" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestDecodeWeakTypes(t *testing.T) {
	var c sinkConf
	if err := Decode(map[string]any{"batch": "12"}, &c); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.Batch != 12 {
		t.Fatalf("expected 12 got %d", c.Batch)
	}
}
