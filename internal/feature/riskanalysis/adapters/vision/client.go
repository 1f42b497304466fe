// Package vision はGoogle Cloud Vision APIを使用した記事画像の文字読み取りクライアントを提供します。
package vision

import (
	"context"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/googleapis/gax-go/v2"

	"news_risk_backend/internal/feature/riskanalysis/usecase"
)

// imageAnnotator は*gvision.ImageAnnotatorClientのうち本パッケージが使用するメソッドです。
type imageAnnotator interface {
	BatchAnnotateImages(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest, opts ...gax.CallOption) (*visionpb.BatchAnnotateImagesResponse, error)
	Close() error
}

// VisionTextReader はGoogle Cloud Vision APIを使用して画像から文字を読み取ります。
type VisionTextReader struct {
	client imageAnnotator
}

// VisionTextReaderがTextReaderを実装していることをコンパイル時に検証します。
var _ usecase.TextReader = (*VisionTextReader)(nil)

// NewVisionTextReader はADCを使用してVisionTextReaderの新しいインスタンスを生成します。
func NewVisionTextReader(ctx context.Context) (*VisionTextReader, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionTextReader{client: client}, nil
}

// Close はVision APIクライアントを解放します。
func (v *VisionTextReader) Close() error {
	return v.client.Close()
}

// ReadText は画像バイト列から文書全体のテキストを読み取ります。文字がなければ空文字列を返します。
func (v *VisionTextReader) ReadText(ctx context.Context, imageData []byte) (string, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: imageData},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_DOCUMENT_TEXT_DETECTION},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return "", fmt.Errorf("vision API request failed: %w", err)
	}

	if len(resp.Responses) == 0 {
		return "", nil
	}

	if resp.Responses[0].Error != nil {
		return "", fmt.Errorf("vision API error: %s", resp.Responses[0].Error.Message)
	}

	return resp.Responses[0].GetFullTextAnnotation().GetText(), nil
}
