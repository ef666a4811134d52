package main

import (
	"mixtape/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.ProfileModel{},
		model.HistorySongModel{},
		model.FollowModel{},
		model.SongLikeModel{},
		model.RecommendationModel{},
		model.UserDeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
