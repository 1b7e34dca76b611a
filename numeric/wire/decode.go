package wire

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/jsonc"

	"github.com/terminusdb-labs/numeric-core/numeric/ast"
	"github.com/terminusdb-labs/numeric-core/numeric/numerr"
)

// DecodeAST decodes raw into an ast.Expression tree. raw may contain
// comments and trailing commas; it is preprocessed with jsonc.ToJSON before
// decoding.
func DecodeAST(raw []byte) (ast.Expression, error) {
	return decodeNode(jsonc.ToJSON(raw))
}

func decodeNode(raw []byte) (ast.Expression, error) {
	m, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}

	if opRaw, ok := m["op"]; ok {
		var op string
		if err := json.Unmarshal(opRaw, &op); err != nil {
			return nil, numerr.Malformed("AST node \"op\" must be a string: %s", err)
		}
		return decodeOperator(op, m)
	}
	if nameRaw, ok := m["var"]; ok {
		var name string
		if err := json.Unmarshal(nameRaw, &name); err != nil {
			return nil, numerr.Malformed("AST node \"var\" must be a string: %s", err)
		}
		return ast.NewVar(name), nil
	}
	if dataRaw, ok := m["data"]; ok {
		return decodeLiteral(dataRaw)
	}
	return nil, numerr.Malformed("AST node has none of \"op\", \"var\", \"data\"")
}

func decodeOperator(op string, m map[string]json.RawMessage) (ast.Expression, error) {
	switch op {
	case ast.OpFloor, ast.OpNegate:
		argRaw, ok := m["argument"]
		if !ok {
			return nil, numerr.Malformed("%s node missing \"argument\"", op)
		}
		arg, err := decodeNode(argRaw)
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: op, Operand: arg}, nil

	case ast.OpPlus, ast.OpMinus, ast.OpTimes, ast.OpDivide, ast.OpDiv, ast.OpExp:
		leftRaw, ok := m["left"]
		if !ok {
			return nil, numerr.Malformed("%s node missing \"left\"", op)
		}
		rightRaw, ok := m["right"]
		if !ok {
			return nil, numerr.Malformed("%s node missing \"right\"", op)
		}
		left, err := decodeNode(leftRaw)
		if err != nil {
			return nil, err
		}
		right, err := decodeNode(rightRaw)
		if err != nil {
			return nil, err
		}
		return &ast.Binary{Operator: op, Left: left, Right: right}, nil

	default:
		return nil, numerr.Malformed("unrecognized AST operator %q", op)
	}
}

// decodeLiteral materializes an ast.Literal from an ArithmeticValue payload:
// a bare JSON number token, a JSON string holding a number token, or a
// typed-literal dict. All are decoded with
// UseNumber so numeric/parse never sees a float64 intermediate.
func decodeLiteral(raw json.RawMessage) (ast.Expression, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, numerr.Malformed("invalid literal payload: %s", err)
	}
	switch v.(type) {
	case json.Number, string, map[string]any:
		return ast.NewLiteral(v), nil
	default:
		return nil, numerr.Malformed("unsupported literal payload %v", v)
	}
}

func decodeObject(raw []byte) (map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var m map[string]json.RawMessage
	if err := dec.Decode(&m); err != nil {
		return nil, numerr.Malformed("invalid AST node: %s", err)
	}
	return m, nil
}
