// Package api はOpenAPI定義から生成したリクエスト/レスポンスの型を提供します。
package api

//go:generate go tool oapi-codegen -config ../../api/oapi-codegen.yaml ../../api/openapi.yaml
