package ui

// SymbolArrow points from a destination to what it resolves to.
const SymbolArrow = "→"
