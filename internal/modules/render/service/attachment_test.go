package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/reshetovitsme/archive-viewer/internal/modules/archive/domain"
	"github.com/reshetovitsme/archive-viewer/internal/modules/render/assets"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name       string
		attachment domain.Attachment
		want       domain.AttachmentKind
	}{
		{"image content type", domain.Attachment{URL: "assets/1_blob", ContentType: lo.ToPtr("image/png")}, domain.AttachmentKindImage},
		{"declared non-image wins over extension", domain.Attachment{URL: "assets/1_a.png", ContentType: lo.ToPtr("application/pdf")}, domain.AttachmentKindFile},
		{"extension fallback", domain.Attachment{URL: "assets/1_photo.JPEG"}, domain.AttachmentKindImage},
		{"extension with query string", domain.Attachment{URL: "https://cdn.example.com/a/b/cat.webp?ex=65&is=66"}, domain.AttachmentKindImage},
		{"pdf without content type", domain.Attachment{URL: "assets/1_report.pdf"}, domain.AttachmentKindFile},
		{"extension must match exactly", domain.Attachment{URL: "assets/1_archive.xpng"}, domain.AttachmentKindFile},
		{"no extension", domain.Attachment{URL: "assets/README"}, domain.AttachmentKindFile},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.attachment))
		})
	}
}

func TestAttachmentImage(t *testing.T) {
	node := New(nil).Attachment(domain.Attachment{
		Filename:    "cat.png",
		URL:         "assets/1_cat.png",
		ContentType: lo.ToPtr("image/png"),
		Width:       lo.ToPtr(640),
		Height:      lo.ToPtr(480),
	})

	require.Equal(t, "img", node.Data)
	require.Equal(t, `<img class="image" src="assets/1_cat.png" alt="cat.png" width="640" height="480" loading="lazy"/>`, String(node))
}

func TestAttachmentFileCard(t *testing.T) {
	node := New(nil).Attachment(domain.Attachment{
		Filename: "report.pdf",
		Size:     1536000,
		URL:      "assets/2_report.pdf",
	})

	out := String(node)
	require.Equal(t, "a", node.Data)
	require.Contains(t, out, `href="assets/2_report.pdf"`)
	require.Contains(t, out, `<div class="attachment-title">report.pdf</div>`)
	require.Contains(t, out, `<div class="attachment-size">1.5 MB</div>`)
	require.Contains(t, out, assets.FileIcon)
}

func TestFormatSize(t *testing.T) {
	require.Equal(t, "0 B", FormatSize(0))
	require.Equal(t, "0 B", FormatSize(-5))
	require.Equal(t, "999 B", FormatSize(999))
	require.Equal(t, "1.5 MB", FormatSize(1536000))
	require.Equal(t, "25 MB", FormatSize(25_000_000))
}
