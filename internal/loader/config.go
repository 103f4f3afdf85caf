package loader

type Config struct {
	InputFile    string  `envconfig:"QTREE_INPUT_FILE"`
	Scale        float64 `envconfig:"QTREE_OBJ_SCALE" default:"200"`
	OffsetX      float64 `envconfig:"QTREE_OBJ_OFFSET_X" default:"0"`
	OffsetY      float64 `envconfig:"QTREE_OBJ_OFFSET_Y" default:"0"`
	RandomPoints int     `envconfig:"QTREE_RANDOM_POINTS" default:"1000"`
	RandomSeed   uint32  `envconfig:"QTREE_RANDOM_SEED" default:"0"`
}
