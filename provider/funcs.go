package provider

import (
	"errors"
	"fmt"

	"github.com/npillmayer/stylecache/nodeid"
)

// ErrArity is returned by FromFuncs if the handler table does not hold
// exactly HandlerCount functions.
var ErrArity = errors.New("provider: wrong number of handler functions")

// ErrHandlerType is returned by FromFuncs if a handler has the wrong signature.
var ErrHandlerType = errors.New("provider: handler function has wrong signature")

// Handlers is a Provider made from raw handler functions. Nodes are passed
// as plain strings, as is usual for foreign hosts. Nil functions answer
// with zero values.
type Handlers struct {
	NodeNameFunc            func(node string) string
	NodeClassesFunc         func(node string) string
	NodeIDFunc              func(node string) string
	NamedAncestorFunc       func(node, name string) string
	NamedParentFunc         func(node, name string) string
	NamedSiblingFunc        func(node, name string) string
	NamedGenericSiblingFunc func(node, name string) string
	ParentFunc              func(node string) string
	SiblingFunc             func(node string) string
	HasNameFunc             func(node, name string) bool
	HasClassFunc            func(node, name string) bool
	HasIDFunc               func(node, name string) bool
	HasAttributeFunc        func(node, name string) bool
	AttributeEqualsFunc     func(node, name, value string) bool
	AttributeDashmatchFunc  func(node, name, value string) bool
	AttributeIncludesFunc   func(node, name, value string) bool
	AttributePrefixFunc     func(node, name, value string) bool
	AttributeSuffixFunc     func(node, name, value string) bool
	AttributeSubstringFunc  func(node, name, value string) bool
	IsRootFunc              func(node string) bool
	CountSiblingsFunc       func(node string, sameName, after bool) int
	IsEmptyFunc             func(node string) bool
	IsLinkFunc              func(node string) bool
	IsVisitedFunc           func(node string) bool
	IsHoverFunc             func(node string) bool
	IsActiveFunc            func(node string) bool
	IsFocusFunc             func(node string) bool
	IsEnabledFunc           func(node string) bool
	IsDisabledFunc          func(node string) bool
	IsCheckedFunc           func(node string) bool
	IsTargetFunc            func(node string) bool
	IsLangFunc              func(node, lang string) bool
	UAFontSizeFunc          func() float64
}

// slots returns pointers to the handler fields in table order.
func (h *Handlers) slots() [HandlerCount]interface{} {
	return [HandlerCount]interface{}{
		&h.NodeNameFunc, &h.NodeClassesFunc, &h.NodeIDFunc,
		&h.NamedAncestorFunc, &h.NamedParentFunc, &h.NamedSiblingFunc, &h.NamedGenericSiblingFunc,
		&h.ParentFunc, &h.SiblingFunc,
		&h.HasNameFunc, &h.HasClassFunc, &h.HasIDFunc, &h.HasAttributeFunc,
		&h.AttributeEqualsFunc, &h.AttributeDashmatchFunc, &h.AttributeIncludesFunc, &h.AttributePrefixFunc, &h.AttributeSuffixFunc, &h.AttributeSubstringFunc,
		&h.IsRootFunc, &h.CountSiblingsFunc, &h.IsEmptyFunc,
		&h.IsLinkFunc, &h.IsVisitedFunc, &h.IsHoverFunc, &h.IsActiveFunc, &h.IsFocusFunc,
		&h.IsEnabledFunc, &h.IsDisabledFunc, &h.IsCheckedFunc, &h.IsTargetFunc, &h.IsLangFunc,
		&h.UAFontSizeFunc,
	}
}

// FromFuncs installs a table of handler functions, in the order of the
// operations of interface Provider. The table has to hold exactly
// HandlerCount entries, otherwise ErrArity is returned. Entries may be nil.
func FromFuncs(fns []interface{}) (*Handlers, error) {
	if len(fns) != HandlerCount {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrArity, len(fns), HandlerCount)
	}
	h := &Handlers{}
	for i, slot := range h.slots() {
		if fns[i] == nil {
			continue
		}
		if !assign(slot, fns[i]) {
			return nil, fmt.Errorf("%w: handler #%d is %T", ErrHandlerType, i, fns[i])
		}
	}
	tracer().Debugf("installed node provider from %d handler functions", HandlerCount)
	return h, nil
}

func assign(slot, fn interface{}) bool {
	ok := false
	switch s := slot.(type) {
	case *func(string) string:
		*s, ok = fn.(func(string) string)
	case *func(string, string) string:
		*s, ok = fn.(func(string, string) string)
	case *func(string, string) bool:
		*s, ok = fn.(func(string, string) bool)
	case *func(string, string, string) bool:
		*s, ok = fn.(func(string, string, string) bool)
	case *func(string) bool:
		*s, ok = fn.(func(string) bool)
	case *func(string, bool, bool) int:
		*s, ok = fn.(func(string, bool, bool) int)
	case *func() float64:
		*s, ok = fn.(func() float64)
	}
	return ok
}

var _ Provider = &Handlers{}

func str(f func(string) string, node nodeid.ID) string {
	if f == nil {
		return ""
	}
	return f(node.String())
}

func named(f func(string, string) string, node nodeid.ID, name string) nodeid.ID {
	if f == nil {
		return nodeid.None
	}
	return nodeid.Intern(f(node.String(), name))
}

func pred(f func(string) bool, node nodeid.ID) bool {
	return f != nil && f(node.String())
}

func pred2(f func(string, string) bool, node nodeid.ID, s string) bool {
	return f != nil && f(node.String(), s)
}

func pred3(f func(string, string, string) bool, node nodeid.ID, name, value string) bool {
	return f != nil && f(node.String(), name, value)
}

func (h *Handlers) NodeName(node nodeid.ID) string    { return str(h.NodeNameFunc, node) }
func (h *Handlers) NodeClasses(node nodeid.ID) string { return str(h.NodeClassesFunc, node) }
func (h *Handlers) NodeID(node nodeid.ID) string      { return str(h.NodeIDFunc, node) }

func (h *Handlers) NamedAncestor(node nodeid.ID, name string) nodeid.ID {
	return named(h.NamedAncestorFunc, node, name)
}

func (h *Handlers) NamedParent(node nodeid.ID, name string) nodeid.ID {
	return named(h.NamedParentFunc, node, name)
}

func (h *Handlers) NamedSibling(node nodeid.ID, name string) nodeid.ID {
	return named(h.NamedSiblingFunc, node, name)
}

func (h *Handlers) NamedGenericSibling(node nodeid.ID, name string) nodeid.ID {
	return named(h.NamedGenericSiblingFunc, node, name)
}

func (h *Handlers) Parent(node nodeid.ID) nodeid.ID  { return nodeid.Intern(str(h.ParentFunc, node)) }
func (h *Handlers) Sibling(node nodeid.ID) nodeid.ID { return nodeid.Intern(str(h.SiblingFunc, node)) }

func (h *Handlers) HasName(node nodeid.ID, name string) bool  { return pred2(h.HasNameFunc, node, name) }
func (h *Handlers) HasClass(node nodeid.ID, name string) bool { return pred2(h.HasClassFunc, node, name) }
func (h *Handlers) HasID(node nodeid.ID, name string) bool    { return pred2(h.HasIDFunc, node, name) }

func (h *Handlers) HasAttribute(node nodeid.ID, name string) bool {
	return pred2(h.HasAttributeFunc, node, name)
}

func (h *Handlers) AttributeEquals(node nodeid.ID, name, value string) bool {
	return pred3(h.AttributeEqualsFunc, node, name, value)
}

func (h *Handlers) AttributeDashmatch(node nodeid.ID, name, value string) bool {
	return pred3(h.AttributeDashmatchFunc, node, name, value)
}

func (h *Handlers) AttributeIncludes(node nodeid.ID, name, value string) bool {
	return pred3(h.AttributeIncludesFunc, node, name, value)
}

func (h *Handlers) AttributePrefix(node nodeid.ID, name, value string) bool {
	return pred3(h.AttributePrefixFunc, node, name, value)
}

func (h *Handlers) AttributeSuffix(node nodeid.ID, name, value string) bool {
	return pred3(h.AttributeSuffixFunc, node, name, value)
}

func (h *Handlers) AttributeSubstring(node nodeid.ID, name, value string) bool {
	return pred3(h.AttributeSubstringFunc, node, name, value)
}

func (h *Handlers) IsRoot(node nodeid.ID) bool { return pred(h.IsRootFunc, node) }

func (h *Handlers) CountSiblings(node nodeid.ID, sameName, after bool) int {
	if h.CountSiblingsFunc == nil {
		return 0
	}
	return h.CountSiblingsFunc(node.String(), sameName, after)
}

func (h *Handlers) IsEmpty(node nodeid.ID) bool    { return pred(h.IsEmptyFunc, node) }
func (h *Handlers) IsLink(node nodeid.ID) bool     { return pred(h.IsLinkFunc, node) }
func (h *Handlers) IsVisited(node nodeid.ID) bool  { return pred(h.IsVisitedFunc, node) }
func (h *Handlers) IsHover(node nodeid.ID) bool    { return pred(h.IsHoverFunc, node) }
func (h *Handlers) IsActive(node nodeid.ID) bool   { return pred(h.IsActiveFunc, node) }
func (h *Handlers) IsFocus(node nodeid.ID) bool    { return pred(h.IsFocusFunc, node) }
func (h *Handlers) IsEnabled(node nodeid.ID) bool  { return pred(h.IsEnabledFunc, node) }
func (h *Handlers) IsDisabled(node nodeid.ID) bool { return pred(h.IsDisabledFunc, node) }
func (h *Handlers) IsChecked(node nodeid.ID) bool  { return pred(h.IsCheckedFunc, node) }
func (h *Handlers) IsTarget(node nodeid.ID) bool   { return pred(h.IsTargetFunc, node) }

func (h *Handlers) IsLang(node nodeid.ID, lang string) bool { return pred2(h.IsLangFunc, node, lang) }

// UAFontSize returns DefaultUAFontSize if no handler is installed.
func (h *Handlers) UAFontSize() float64 {
	if h.UAFontSizeFunc == nil {
		return DefaultUAFontSize
	}
	return h.UAFontSizeFunc()
}
