package coloringbook

import (
	"context"
	"fmt"
	"image"

	"github.com/aaronland/go-image/resize"
	"github.com/boombuler/barcode/qr"
	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/barcode"
)

// Sheet geometry is fixed for US Letter portrait pages at 150 DPI.
const (
	sheet_dpi      = 150.0
	sheet_margin_x = 0.75
	sheet_margin_y = 0.75
	sheet_line_h   = 0.15
	sheet_qr_dim   = 0.4
	sheet_qr_pad   = 0.5
)

type AddSheetOptions struct {
	Image      image.Image
	Caption    string
	PageNumber int
	URL        string
}

type AddCoverSheetOptions struct {
	Image    image.Image
	Title    string
	Subtitle string
	URL      string
}

// AddSheet appends one coloring page to the PDF: the processed line art
// centered in the printable area, with a footer carrying a QR code for
// the project URL, the page caption and the page number.
func AddSheet(ctx context.Context, pdf *fpdf.Fpdf, opts *AddSheetOptions) error {

	max_w := 8.5 - (sheet_margin_x * 2)
	max_h := 11.0 - (sheet_margin_y * 2) - 0.75 // keep the footer clear

	footer_y := sheet_margin_y + max_h + 0.25

	im, im_w, im_h, err := fitImage(ctx, opts.Image, max_w, max_h)

	if err != nil {
		return fmt.Errorf("Failed to fit image to sheet, %w", err)
	}

	im_x := sheet_margin_x + ((max_w - im_w) / 2.0)
	im_y := sheet_margin_y

	pdf.AddPage()

	name := fmt.Sprintf("page-%03d.png", opts.PageNumber)

	err = placeImage(pdf, im, name, im_x, im_y, im_w, im_h)

	if err != nil {
		return fmt.Errorf("Failed to place image on sheet, %w", err)
	}

	// Footer: QR code, caption, page number

	pdf.SetFont("Helvetica", "", 8)

	if opts.URL != "" {

		key := barcode.RegisterQR(pdf, opts.URL, qr.H, qr.Unicode)
		barcode.Barcode(pdf, key, sheet_margin_x, footer_y, sheet_qr_dim, sheet_qr_dim, false)
	}

	pdf.SetY(footer_y)
	pdf.SetX(sheet_margin_x + sheet_qr_pad)

	cell_w := max_w - sheet_qr_pad - 1.0

	pdf.MultiCell(cell_w, sheet_line_h, opts.Caption, "", "", false)

	pdf.SetY(footer_y)
	pdf.SetX(sheet_margin_x + max_w - 1.0)

	pdf.CellFormat(1.0, sheet_line_h, fmt.Sprintf("%d", opts.PageNumber), "", 0, "R", false, 0, "")

	return nil
}

// AddCoverSheet appends the title page: book title, the cover image and
// a subtitle line.
func AddCoverSheet(ctx context.Context, pdf *fpdf.Fpdf, opts *AddCoverSheetOptions) error {

	max_w := 8.5 - (sheet_margin_x * 2)
	max_h := 11.0 - (sheet_margin_y * 2) - 2.0 // leave room for the title block

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 32)
	pdf.SetY(sheet_margin_y + 0.25)

	pdf.CellFormat(0, 0.6, opts.Title, "", 1, "C", false, 0, "")

	if opts.Subtitle != "" {

		pdf.SetFont("Helvetica", "", 14)
		pdf.CellFormat(0, 0.4, opts.Subtitle, "", 1, "C", false, 0, "")
	}

	if opts.Image != nil {

		im, im_w, im_h, err := fitImage(ctx, opts.Image, max_w, max_h)

		if err != nil {
			return fmt.Errorf("Failed to fit cover image, %w", err)
		}

		im_x := sheet_margin_x + ((max_w - im_w) / 2.0)
		im_y := pdf.GetY() + 0.25

		err = placeImage(pdf, im, "cover.png", im_x, im_y, im_w, im_h)

		if err != nil {
			return fmt.Errorf("Failed to place cover image, %w", err)
		}
	}

	if opts.URL != "" {

		pdf.SetFont("Helvetica", "", 8)
		pdf.SetY(11.0 - sheet_margin_y)

		key := barcode.RegisterQR(pdf, opts.URL, qr.H, qr.Unicode)
		barcode.Barcode(pdf, key, sheet_margin_x, 11.0-sheet_margin_y-sheet_qr_dim, sheet_qr_dim, sheet_qr_dim, false)
	}

	return nil
}

// fitImage scales the image down if it overflows the printable area and
// returns the (possibly resized) image along with its dimensions in
// inches at sheet DPI.
func fitImage(ctx context.Context, im image.Image, max_w float64, max_h float64) (image.Image, float64, float64, error) {

	dims := im.Bounds()

	im_w := float64(dims.Dx()) / sheet_dpi
	im_h := float64(dims.Dy()) / sheet_dpi

	if im_w <= max_w && im_h <= max_h {
		return im, im_w, im_h, nil
	}

	scale := max_w / im_w

	if (max_h / im_h) < scale {
		scale = max_h / im_h
	}

	target := int(float64(max(dims.Dx(), dims.Dy())) * scale)

	new_im, err := resize.ResizeImage(ctx, im, target)

	if err != nil {
		return nil, 0, 0, fmt.Errorf("Failed to resize image, %w", err)
	}

	new_dims := new_im.Bounds()

	im_w = float64(new_dims.Dx()) / sheet_dpi
	im_h = float64(new_dims.Dy()) / sheet_dpi

	return new_im, im_w, im_h, nil
}

// placeImage registers an in-memory PNG with the PDF and draws it.
func placeImage(pdf *fpdf.Fpdf, im image.Image, name string, x float64, y float64, w float64, h float64) error {

	r, err := pngReader(im)

	if err != nil {
		return fmt.Errorf("Failed to encode %s, %w", name, err)
	}

	im_opts := fpdf.ImageOptions{
		ImageType: "png",
		ReadDpi:   false,
	}

	info := pdf.RegisterImageOptionsReader(name, im_opts, r)
	info.SetDpi(sheet_dpi)

	pdf.ImageOptions(name, x, y, w, h, false, im_opts, 0, "")

	return nil
}
