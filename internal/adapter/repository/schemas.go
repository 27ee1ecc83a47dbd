package repository

import "github.com/lingolog/lingolog/pkg/filterexpr"

var listLogsSchema = filterexpr.Schema{
	"language": {
		Kind: filterexpr.KindString,
		Ops:  []filterexpr.Op{filterexpr.OpEQ},
	},
	"activity": {
		Kind: filterexpr.KindNumber,
		Ops:  []filterexpr.Op{filterexpr.OpEQ},
	},
	"keyword": {
		Kind: filterexpr.KindString,
		Ops:  []filterexpr.Op{filterexpr.OpEQ, filterexpr.OpSW},
	},
	"logged_at": {
		Kind: filterexpr.KindTimestamp,
		Ops:  []filterexpr.Op{filterexpr.OpGE, filterexpr.OpLE},
	},
}

var (
	logOrderKeys    = []string{"created_at", "updated_at", "score"}
	defaultLogOrder = filterexpr.Order{Key: "created_at", Desc: true}
)
