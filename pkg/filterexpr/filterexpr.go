// Package filterexpr parses AIP-style list filter strings into flat
// predicates. Filters are CEL expressions restricted to conjunctions of
// comparisons against literals, e.g.
//
//	language == "jpn" && keyword.startsWith("man") && logged_at >= timestamp("2026-03-01T00:00:00Z")
//
// Schemas whitelist the fields and operators a resource accepts; anything
// else is rejected up front instead of reaching the storage layer.
package filterexpr

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/cel-go/cel"
	exprpb "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// Kind describes the literal type a field accepts.
type Kind string

const (
	KindString    Kind = "string"
	KindNumber    Kind = "number"
	KindTimestamp Kind = "timestamp"
)

// Op is a supported comparison operation.
type Op string

const (
	OpEQ Op = "=="
	OpGE Op = ">="
	OpLE Op = "<="
	OpSW Op = "startsWith"
)

// Field whitelists the operations usable on one filterable field.
type Field struct {
	Kind Kind
	Ops  []Op
}

// Schema maps filterable field names to their rules.
type Schema map[string]Field

// Predicate is one parsed comparison. Value is string, float64 or time.Time
// depending on the field kind.
type Predicate struct {
	Field string
	Op    Op
	Value any
}

// Parse validates the filter against the schema and returns its predicates.
// An empty filter yields no predicates and no error.
func Parse(filter string, schema Schema) ([]Predicate, error) {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return nil, nil
	}
	if len(schema) == 0 {
		return nil, errors.New("filter not supported for this resource")
	}

	env, err := buildEnv(schema)
	if err != nil {
		return nil, err
	}
	ast, issues := env.Parse(filter)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("invalid filter: %w", issues.Err())
	}
	parsed, err := cel.AstToParsedExpr(ast)
	if err != nil {
		return nil, fmt.Errorf("convert filter AST: %w", err)
	}

	exprs, err := flattenAnd(parsed.GetExpr())
	if err != nil {
		return nil, err
	}

	predicates := make([]Predicate, 0, len(exprs))
	for _, expr := range exprs {
		pred, err := parseComparison(expr)
		if err != nil {
			return nil, err
		}
		rule, ok := schema[pred.Field]
		if !ok {
			return nil, fmt.Errorf("field %q is not filterable", pred.Field)
		}
		if !opAllowed(rule.Ops, pred.Op) {
			return nil, fmt.Errorf("operator %q is not allowed for field %q", string(pred.Op), pred.Field)
		}
		if err := checkKind(rule.Kind, pred.Value); err != nil {
			return nil, fmt.Errorf("field %q: %w", pred.Field, err)
		}
		predicates = append(predicates, pred)
	}
	return predicates, nil
}

func buildEnv(schema Schema) (*cel.Env, error) {
	opts := make([]cel.EnvOption, 0, len(schema)+1)
	for name, rule := range schema {
		var celType *cel.Type
		switch rule.Kind {
		case KindString:
			celType = cel.StringType
		case KindNumber:
			celType = cel.DoubleType
		case KindTimestamp:
			celType = cel.TimestampType
		default:
			return nil, fmt.Errorf("field %q: unsupported kind %s", name, rule.Kind)
		}
		opts = append(opts, cel.Variable(name, celType))
	}
	opts = append(opts, cel.CrossTypeNumericComparisons(true))
	return cel.NewEnv(opts...)
}

// flattenAnd unrolls nested AND chains; any other logical operator is
// rejected so every filter stays a plain conjunction.
func flattenAnd(expr *exprpb.Expr) ([]*exprpb.Expr, error) {
	if expr == nil {
		return nil, errors.New("empty filter expression")
	}
	call := expr.GetCallExpr()
	if call == nil {
		return []*exprpb.Expr{expr}, nil
	}
	switch call.Function {
	case "_&&_":
		var result []*exprpb.Expr
		for _, arg := range call.Args {
			nested, err := flattenAnd(arg)
			if err != nil {
				return nil, err
			}
			result = append(result, nested...)
		}
		return result, nil
	case "_||_", "_?_:_", "!_":
		return nil, fmt.Errorf("operator %q is not supported; only AND is allowed", call.Function)
	default:
		return []*exprpb.Expr{expr}, nil
	}
}

func parseComparison(expr *exprpb.Expr) (Predicate, error) {
	call := expr.GetCallExpr()
	if call == nil {
		return Predicate{}, errors.New("expected a comparison expression")
	}

	switch call.Function {
	case "_==_", "_>=_", "_<=_":
		if call.Target != nil || len(call.Args) != 2 {
			return Predicate{}, fmt.Errorf("operator %q expects two operands", call.Function)
		}
		op := map[string]Op{"_==_": OpEQ, "_>=_": OpGE, "_<=_": OpLE}[call.Function]
		field, err := identName(call.Args[0])
		if err != nil {
			return Predicate{}, err
		}
		value, err := literalValue(call.Args[1])
		if err != nil {
			return Predicate{}, err
		}
		return Predicate{Field: field, Op: op, Value: value}, nil
	case "startsWith":
		if call.Target == nil || len(call.Args) != 1 {
			return Predicate{}, errors.New("startsWith expects a receiver and one argument")
		}
		field, err := identName(call.Target)
		if err != nil {
			return Predicate{}, err
		}
		value, err := literalValue(call.Args[0])
		if err != nil {
			return Predicate{}, err
		}
		if _, ok := value.(string); !ok {
			return Predicate{}, errors.New("startsWith requires a string literal")
		}
		return Predicate{Field: field, Op: OpSW, Value: value}, nil
	default:
		return Predicate{}, fmt.Errorf("function %q is not supported", call.Function)
	}
}

func identName(expr *exprpb.Expr) (string, error) {
	ident := expr.GetIdentExpr()
	if ident == nil {
		return "", errors.New("left-hand side must be a field name")
	}
	return ident.GetName(), nil
}

func literalValue(expr *exprpb.Expr) (any, error) {
	if constant := expr.GetConstExpr(); constant != nil {
		switch constant.ConstantKind.(type) {
		case *exprpb.Constant_StringValue:
			return constant.GetStringValue(), nil
		case *exprpb.Constant_Int64Value:
			return float64(constant.GetInt64Value()), nil
		case *exprpb.Constant_Uint64Value:
			return float64(constant.GetUint64Value()), nil
		case *exprpb.Constant_DoubleValue:
			return constant.GetDoubleValue(), nil
		default:
			return nil, fmt.Errorf("literal type %T is not supported", constant.ConstantKind)
		}
	}
	if call := expr.GetCallExpr(); call != nil && call.Function == "timestamp" {
		if call.Target != nil || len(call.Args) != 1 {
			return nil, errors.New("timestamp() expects a single string argument")
		}
		arg := call.Args[0].GetConstExpr()
		if arg == nil {
			return nil, errors.New("timestamp() argument must be a string literal")
		}
		parsed, err := time.Parse(time.RFC3339, arg.GetStringValue())
		if err != nil {
			return nil, fmt.Errorf("timestamp literal %q is not RFC3339", arg.GetStringValue())
		}
		return parsed, nil
	}
	return nil, errors.New("right-hand side must be a literal or timestamp() call")
}

func opAllowed(ops []Op, op Op) bool {
	for _, allowed := range ops {
		if allowed == op {
			return true
		}
	}
	return false
}

func checkKind(kind Kind, value any) error {
	switch kind {
	case KindString:
		if _, ok := value.(string); !ok {
			return errors.New("expected string literal")
		}
	case KindNumber:
		if _, ok := value.(float64); !ok {
			return errors.New("expected numeric literal")
		}
	case KindTimestamp:
		if _, ok := value.(time.Time); !ok {
			return errors.New("expected timestamp literal")
		}
	}
	return nil
}
