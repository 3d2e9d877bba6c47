package ir

// Conditionals and loops come in statement form and expression form as
// distinct kinds sharing child structure. The statement forms may be
// partial (no else branch); the expression forms must be total, since
// they yield a value on every path.

// IfStmt is a conditional statement with an optional else branch.
type IfStmt struct {
	base
	Cond Expr
	Then *Block
	Else *Block // nil when there is no else branch
}

// NewIfStmt creates a conditional statement; elseBlock may be nil.
func NewIfStmt(cond Expr, then, elseBlock *Block) (*IfStmt, error) {
	if cond == nil {
		return nil, constructErr(KindIfStmt, "if statement requires a condition")
	}
	if then == nil {
		return nil, constructErr(KindIfStmt, "if statement requires a then block")
	}
	return &IfStmt{Cond: cond, Then: then, Else: elseBlock}, nil
}

func (i *IfStmt) Kind() Kind       { return KindIfStmt }
func (i *IfStmt) stmtNode()        {}
func (i *IfStmt) DiagName() string { return "IfStmt" }

// IfExpr is a conditional expression. Both arms are required: an
// expression must produce a value whichever way the condition goes.
type IfExpr struct {
	base
	Cond Expr
	Then Expr
	Else Expr
}

// NewIfExpr creates a conditional expression; all three children are
// required.
func NewIfExpr(cond, then, elseExpr Expr) (*IfExpr, error) {
	if cond == nil {
		return nil, constructErr(KindIfExpr, "if expression requires a condition")
	}
	if then == nil || elseExpr == nil {
		return nil, constructErr(KindIfExpr, "if expression requires both arms")
	}
	return &IfExpr{Cond: cond, Then: then, Else: elseExpr}, nil
}

func (i *IfExpr) Kind() Kind       { return KindIfExpr }
func (i *IfExpr) exprNode()        {}
func (i *IfExpr) DiagName() string { return "IfExpr" }

// WhileStmt loops over a body while a condition holds.
type WhileStmt struct {
	base
	Cond Expr
	Body *Block
}

// NewWhileStmt creates a while statement.
func NewWhileStmt(cond Expr, body *Block) (*WhileStmt, error) {
	if cond == nil {
		return nil, constructErr(KindWhileStmt, "while statement requires a condition")
	}
	if body == nil {
		return nil, constructErr(KindWhileStmt, "while statement requires a body block")
	}
	return &WhileStmt{Cond: cond, Body: body}, nil
}

func (w *WhileStmt) Kind() Kind       { return KindWhileStmt }
func (w *WhileStmt) stmtNode()        {}
func (w *WhileStmt) DiagName() string { return "WhileStmt" }

// WhileExpr is the expression form of a while loop, for targets where a
// loop yields a value. Backends without such a construct deliberately
// leave it unhandled and report the unimplemented-construct error.
type WhileExpr struct {
	base
	Cond Expr
	Body *Block
}

// NewWhileExpr creates a while expression.
func NewWhileExpr(cond Expr, body *Block) (*WhileExpr, error) {
	if cond == nil {
		return nil, constructErr(KindWhileExpr, "while expression requires a condition")
	}
	if body == nil {
		return nil, constructErr(KindWhileExpr, "while expression requires a body block")
	}
	return &WhileExpr{Cond: cond, Body: body}, nil
}

func (w *WhileExpr) Kind() Kind       { return KindWhileExpr }
func (w *WhileExpr) exprNode()        {}
func (w *WhileExpr) DiagName() string { return "WhileExpr" }

// ForRangeLoopStmt iterates a named binding over a half-open numeric
// range with an optional step.
type ForRangeLoopStmt struct {
	base
	Variable string
	Start    Expr
	End      Expr
	Step     Expr // nil for the target's default step
	Body     *Block
}

// NewForRangeLoopStmt creates a range loop statement; step may be nil.
func NewForRangeLoopStmt(variable string, start, end, step Expr, body *Block) (*ForRangeLoopStmt, error) {
	if variable == "" {
		return nil, constructErr(KindForRangeLoopStmt, "range loop requires a loop variable")
	}
	if start == nil || end == nil {
		return nil, constructErr(KindForRangeLoopStmt, "range loop over %q requires start and end", variable)
	}
	if body == nil {
		return nil, constructErr(KindForRangeLoopStmt, "range loop over %q requires a body block", variable)
	}
	return &ForRangeLoopStmt{Variable: variable, Start: start, End: end, Step: step, Body: body}, nil
}

func (f *ForRangeLoopStmt) Kind() Kind       { return KindForRangeLoopStmt }
func (f *ForRangeLoopStmt) stmtNode()        {}
func (f *ForRangeLoopStmt) DiagName() string { return "ForRangeLoopStmt" }
