package clex

import (
	"math"
	"sort"
)

// EulerMascheroni is the Euler–Mascheroni constant γ.
const EulerMascheroni = 0.57721566490153286060651209008240243104215933593992

// SymbolTable maps variable names to their values. A new table already holds
// the constants pi, euler, phi and eulerMascheroni. It is not safe to use a
// SymbolTable concurrently.
type SymbolTable struct {
	values map[string]float64
}

func seededValues() map[string]float64 {
	return map[string]float64{
		"pi":              math.Pi,
		"euler":           math.E,
		"phi":             math.Phi,
		"eulerMascheroni": EulerMascheroni,
	}
}

// NewSymbolTable creates a table holding only the standard constants.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{seededValues()}
}

// NewSymbolTableFrom creates a table holding the standard constants and every
// binding in vars. Values in vars win over constants of the same name.
func NewSymbolTableFrom(vars map[string]float64) *SymbolTable {
	symbols := NewSymbolTable()
	for name, value := range vars {
		symbols.values[name] = value
	}
	return symbols
}

// Get returns the value bound to name.
func (symbols *SymbolTable) Get(name string) (float64, bool) {
	value, ok := symbols.values[name]
	return value, ok
}

// Set binds value to name, creating the variable if needed.
func (symbols *SymbolTable) Set(name string, value float64) {
	symbols.values[name] = value
}

// Reset drops every user binding and restores the standard constants.
func (symbols *SymbolTable) Reset() {
	symbols.values = seededValues()
}

// Names returns the bound names in lexical order.
func (symbols *SymbolTable) Names() []string {
	names := make([]string, 0, len(symbols.values))
	for name := range symbols.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
