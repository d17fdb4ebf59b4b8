package pure

import "go.uber.org/zap"

type TableConfig struct {
	Arity  int         // number of arguments per tuple, default: 1
	Logger *zap.Logger // default: no-op
}

func NewTableConfig(arity int, logger *zap.Logger) TableConfig {
	if arity <= 0 {
		arity = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return TableConfig{
		Arity:  arity,
		Logger: logger,
	}
}
