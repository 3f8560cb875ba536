// internal/ui/toast.go
package ui

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/notify"
	"go-space-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2/text"
)

const (
	toastHeight  = 32
	toastPadding = 16
	toastTop     = 80
	toastGap     = 8
)

// ToastView рисует уведомления очереди по центру верхней части поля.
type ToastView struct {
	queue  *notify.Queue
	fieldW float64
}

func NewToastView(queue *notify.Queue, fieldW float64) *ToastView {
	return &ToastView{queue: queue, fieldW: fieldW}
}

func (v *ToastView) Draw(s *Surface) {
	face := s.Face(render.TextSmall)
	for i, t := range v.queue.Active() {
		alpha := v.queue.Alpha(t, config.ToastFadeFrames)
		w := float64(text.BoundString(face, t.Message).Dx() + 2*toastPadding)
		x := (v.fieldW - w) / 2
		y := float64(toastTop + i*(toastHeight+toastGap))

		bg := render.Fade(config.ToastColor, alpha)
		s.FillRect(x, y, w, toastHeight, bg)
		s.CenteredText(t.Message, x, y, w, toastHeight, render.TextSmall, render.Fade(config.TextLightColor, alpha))
	}
}
