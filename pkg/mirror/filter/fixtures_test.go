/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package filter_test

import (
	"errors"
	"iter"

	"github.com/voedger/mirror/pkg/mirror"
	"github.com/voedger/mirror/pkg/mirror/classes"
)

type Animal interface{ Sound() string }

type Dog struct{ Name string }

func (Dog) Sound() string { return "woof" }

type Inject struct{}

type Deprecated struct{ Since string }

type Zoo struct {
	Name   string `json:"name"`
	Keeper Animal `inject:""`
	dog    Dog
	count  int
}

var DefaultCapacity = 10

func NewZoo() *Zoo { return &Zoo{} }

func NewZooWithName(name string) *Zoo { return &Zoo{Name: name} }

func NewZooWithCapacity(name string, capacity int, city string) *Zoo {
	return &Zoo{Name: name + "@" + city, count: capacity}
}

func NewZooOpened(bool) *Zoo { return &Zoo{} }

func newZooWith(name string, a Animal) (*Zoo, error) {
	if a == nil {
		return nil, errors.New("no animal")
	}
	return &Zoo{Name: name, Keeper: a}, nil
}

func NewZooFromDog(d Dog) Zoo { return Zoo{Name: d.Name, dog: d} }

// Returns class of Zoo with constructors:
//
//	NewZoo()                                      no annotations
//	NewZooWithName(string)                        Inject
//	NewZooWithCapacity(string, int, string)       no annotations
//	NewZooOpened(bool)                            no annotations
//	newZooWith(string, Animal)                    no annotations, parameter 1 is annotated by Inject
//	NewZooFromDog(Dog)                            Inject, Deprecated
//
// and fields:
//
//	Name     string   StructTag{json:"name"}
//	Keeper   Animal   Inject
//	dog      Dog      no annotations
//	count    int      Deprecated
//	DefaultCapacity   int, static, no annotations
func zooClass() mirror.IClass {
	b := classes.New(nil)
	b.BindTag("inject", func(string) any { return Inject{} })
	classes.Add[Zoo](b).
		AddConstructor(NewZoo).
		AddConstructor(NewZooWithName, classes.ParamNames("name"), classes.Annotate(Inject{})).
		AddConstructor(NewZooWithCapacity).
		AddConstructor(NewZooOpened).
		AddConstructor(newZooWith, classes.ParamNames("name", "animal"), classes.AnnotateParam(1, Inject{})).
		AddConstructor(NewZooFromDog, classes.Annotate(Inject{}, Deprecated{Since: "1.0"})).
		AddStaticField("DefaultCapacity", &DefaultCapacity).
		Field("count", classes.Annotate(Deprecated{Since: "2.0"}))
	return b.MustBuild().Class(mirror.TypeOf[Zoo]())
}

func allParameters(c mirror.IClass) iter.Seq[mirror.IParameter] {
	return func(visit func(mirror.IParameter) bool) {
		for ctor := range c.Constructors() {
			for p := range ctor.Parameters() {
				if !visit(p) {
					return
				}
			}
		}
	}
}

func names[T mirror.IDeclaration](seq iter.Seq[T]) []string {
	nn := []string{}
	for d := range seq {
		nn = append(nn, d.Name())
	}
	return nn
}
