/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package decls

import (
	"fmt"
	"reflect"

	"github.com/voedger/mirror/pkg/mirror"
)

// # Supports:
//   - mirror.IParameter
//   - mirror.IAccessible[mirror.IParameter]
type Parameter struct {
	Accessible[mirror.IParameter]
	Declaration
	ctor  *Constructor
	index int
	typ   reflect.Type
}

func newParameter(ctor *Constructor, index int, typ reflect.Type, d ParamDesc) *Parameter {
	p := &Parameter{
		Declaration: makeDeclaration(mirror.DeclKind_Parameter, ctor.Owner(), d.Name, d.Annotations...),
		ctor:        ctor,
		index:       index,
		typ:         typ,
	}
	p.Accessible = makeAccessible[mirror.IParameter](p, p, ctor.gate)
	return p
}

func (p *Parameter) Type() reflect.Type { return p.typ }

func (p *Parameter) Index() int { return p.index }

func (p *Parameter) Constructor() mirror.IConstructor { return p.ctor }

func (p *Parameter) String() string {
	if p.Name() == "" {
		return fmt.Sprintf("%s «%s#%d %v»", p.Kind().TrimString(), p.ctor.Name(), p.index, p.typ)
	}
	return fmt.Sprintf("%s «%s#%d %s %v»", p.Kind().TrimString(), p.ctor.Name(), p.index, p.Name(), p.typ)
}
