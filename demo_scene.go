package main

import (
	"github.com/df07/spherefield/pkg/core"
	"github.com/df07/spherefield/pkg/film"
	"github.com/df07/spherefield/pkg/material"
)

func vec(x, y, z float32) core.Vec3 {
	return core.NewVec3(x, y, z)
}

func diffuse(r, g, b float32) material.Material {
	return material.NewDiffuse(vec(r, g, b))
}

func metalMat(r, g, b, roughness float32) material.Material {
	return material.NewMetal(vec(r, g, b), roughness)
}

func physical(r, g, b, roughness, metallic float32) material.Material {
	return material.NewPhysical(vec(r, g, b), roughness, metallic)
}

func dielectricMat(ior float32) material.Material {
	return material.NewDielectric(ior)
}

func emissiveMat(r, g, b float32) material.Material {
	return material.NewEmissive(vec(r, g, b))
}

func writeHeatmap(path string, counts [][]int, target int) error {
	return film.WriteSampleHeatmap(path, counts, target)
}
