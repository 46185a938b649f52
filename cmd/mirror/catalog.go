/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package main

import (
	"fmt"
	"reflect"
	"time"

	"github.com/voedger/mirror/pkg/mirror"
	"github.com/voedger/mirror/pkg/mirror/classes"
)

// Sample catalog inspected by the tool.

type Logger interface {
	Log(msg string)
}

type ConsoleLogger struct {
	Prefix string `yaml:"prefix"`
}

func (l ConsoleLogger) Log(msg string) { fmt.Println(l.Prefix + msg) }

func NewConsoleLogger(prefix string) ConsoleLogger { return ConsoleLogger{Prefix: prefix} }

// Marks declaration as injection point.
type Inject struct{ Name string }

// Marks declaration as deprecated.
type Deprecated struct{ Since string }

type Config struct {
	Host    string        `yaml:"host" inject:"host"`
	Port    int           `yaml:"port" inject:"port"`
	Timeout time.Duration `yaml:"timeout"`
	secret  string
}

var DefaultPort = 8080

func NewConfig(host string, port int) Config {
	return Config{Host: host, Port: port, Timeout: time.Minute}
}

func newConfigWithSecret(host, secret string) *Config {
	return &Config{Host: host, Port: DefaultPort, secret: secret}
}

type Server struct {
	Config   *Config `inject:""`
	Logger   Logger  `inject:""`
	started  bool
	handlers int
}

func NewServer(cfg *Config, log Logger) *Server { return &Server{Config: cfg, Logger: log} }

func NewDefaultServer() (*Server, error) {
	cfg := NewConfig("localhost", DefaultPort)
	return NewServer(&cfg, NewConsoleLogger("> ")), nil
}

func newTestServer(cfg *Config) *Server { return &Server{Config: cfg, started: true} }

func NewLegacyServer(host string, port int) *Server {
	cfg := NewConfig(host, port)
	return &Server{Config: &cfg}
}

// Returns catalog classes builder.
func catalog(h mirror.IHost) classes.IClassesBuilder {
	b := classes.New(h)
	b.BindTag("inject", func(v string) any { return Inject{Name: v} })

	classes.Add[ConsoleLogger](b).
		AddConstructor(NewConsoleLogger, classes.ParamNames("prefix"))

	classes.Add[Config](b).
		AddConstructor(NewConfig, classes.ParamNames("host", "port"), classes.Annotate(Inject{})).
		AddConstructor(newConfigWithSecret, classes.ParamNames("host", "secret"), classes.WithVisibility(mirror.Visibility_Private)).
		AddStaticField("DefaultPort", &DefaultPort).
		Field("secret", classes.WithVisibility(mirror.Visibility_Private))

	classes.Add[Server](b).
		AddConstructor(NewServer, classes.ParamNames("cfg", "log"), classes.Annotate(Inject{}), classes.AnnotateParam(1, Inject{Name: "log"})).
		AddConstructor(NewDefaultServer).
		AddConstructor(newTestServer, classes.ParamNames("cfg"), classes.WithVisibility(mirror.Visibility_Protected)).
		AddConstructor(NewLegacyServer, classes.ParamNames("host", "port"), classes.Annotate(Deprecated{Since: "0.9"})).
		Field("handlers", classes.Annotate(Deprecated{Since: "0.9"}))

	return b
}

// Types which can be used in criteria, by name.
var catalogTypes = map[string]reflect.Type{
	"bool":          mirror.TypeOf[bool](),
	"int":           mirror.TypeOf[int](),
	"string":        mirror.TypeOf[string](),
	"any":           mirror.TypeOf[any](),
	"time.Duration": mirror.TypeOf[time.Duration](),
	"Logger":        mirror.TypeOf[Logger](),
	"ConsoleLogger": mirror.TypeOf[ConsoleLogger](),
	"Config":        mirror.TypeOf[Config](),
	"*Config":       mirror.TypeOf[*Config](),
	"Server":        mirror.TypeOf[Server](),
}

// Annotation types which can be used in criteria, by name.
var catalogAnnotations = map[string]reflect.Type{
	"Inject":     mirror.TypeOf[Inject](),
	"Deprecated": mirror.TypeOf[Deprecated](),
	"StructTag":  mirror.TypeOf[mirror.StructTag](),
	"any":        mirror.TypeOf[any](),
}

func lookupType(registry map[string]reflect.Type, name, what string) (reflect.Type, error) {
	if t, ok := registry[name]; ok {
		return t, nil
	}
	return nil, mirror.ErrNotFound("%s «%s»", what, name)
}
