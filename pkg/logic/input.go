package logic

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

type expressionJson struct {
	Var      string
	Op       string
	Operands []map[string]any
}

// ExprFromJson builds an expression from a JSON file. A node is either a leaf
// {"var": "a"} or an operator {"op": "and"|"or"|"not"|"implies"|"xor",
// "operands": [...]} whose operands are nodes themselves.
func ExprFromJson(file string) (Expression, error) {
	bytes, _ := os.ReadFile(file)
	var inputJson map[string]any
	err := json.Unmarshal(bytes, &inputJson)
	if err != nil {
		return nil, err
	}

	return exprFromMap(inputJson)
}

func exprFromMap(node map[string]any) (Expression, error) {
	var decoded expressionJson
	mapstructure.Decode(node, &decoded)

	if decoded.Var != "" {
		return Variable(decoded.Var), nil
	}

	operands := make([]Expression, 0, len(decoded.Operands))
	for _, operandMap := range decoded.Operands {
		operand, err := exprFromMap(operandMap)
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}

	switch decoded.Op {
	case "and":
		return And(operands...), nil
	case "or":
		return Or(operands...), nil
	case "not":
		if len(operands) != 1 {
			return nil, fmt.Errorf("operator \"not\" expects exactly 1 operand, got %v", len(operands))
		}
		return Not(operands[0]), nil
	case "implies":
		if len(operands) != 2 {
			return nil, fmt.Errorf("operator \"implies\" expects exactly 2 operands, got %v", len(operands))
		}
		return Implies(operands[0], operands[1]), nil
	case "xor":
		if len(operands) != 2 {
			return nil, fmt.Errorf("operator \"xor\" expects exactly 2 operands, got %v", len(operands))
		}
		return Xor(operands[0], operands[1]), nil
	default:
		return nil, fmt.Errorf("unknown operator \"%v\"", decoded.Op)
	}
}
