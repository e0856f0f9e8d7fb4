package csound

// effect.go — ordered sequencing of effectful opcodes.
//
// Opcodes with engine-visible effects (writing to output channels, printing,
// writing files, scheduling notes) produce no value; their bindings return an
// Effect wrapping the call node. A Block is the scope that sequences them:
// Do appends in submission order, and the renderer emits block statements in
// exactly that order, never deferring or reordering. Resolution itself is
// pure — constructing an Effect performs nothing.

// Effect is one effectful opcode invocation, held for sequencing by a Block.
type Effect struct{ n *expr }

// effOpcs resolves an effectful opcode into an Effect.
func effOpcs(name string, args ...Val) Effect {
	return Effect{opcs(name, args...)}
}

// Block sequences effects in submission order.
type Block struct {
	stmts []*expr
}

// Do appends one effect to the block.
func (b *Block) Do(e Effect) {
	b.stmts = append(b.stmts, e.n)
}

// Len is the number of effects submitted so far.
func (b *Block) Len() int { return len(b.stmts) }

// Instr is a numbered instrument: a block of effects plus the instrument
// number it renders under.
type Instr struct {
	Num int
	Block
}

// NewInstr makes an empty instrument with the given number.
func NewInstr(num int) *Instr {
	return &Instr{Num: num}
}
