// Package message holds the push copy for every notification type. The
// strings are fixed product copy; only the plan's title or location is
// substituted.
package message

import "fmt"

// Content is the rendered title/body pair for one notification.
type Content struct {
	Title string
	Body  string
}

// TicketOpen announces that a ticketed event's reservations opened today.
func TicketOpen(title string) Content {
	return Content{
		Title: "🎟 티켓 오픈!",
		Body:  fmt.Sprintf("%s 티켓이 오늘 오픈됐어요!", title),
	}
}

// BookingAdvance nudges two weeks ahead of a non-ticketed event.
func BookingAdvance(title string) Content {
	return Content{
		Title: "📅 미리 예약해둘까요?",
		Body:  fmt.Sprintf("%s까지 2주! 미리 예약하면 자리 걱정 없어요", title),
	}
}

// BookingTicketedNow nudges immediately when the ticket window is
// already open.
func BookingTicketedNow(title string) Content {
	return Content{
		Title: "🎟 지금 예매 가능!",
		Body:  fmt.Sprintf("%s 예매가 가능해요. 좋은 자리 먼저 잡아요!", title),
	}
}

// BookingLastCall nudges immediately when a non-ticketed event is less
// than two weeks out.
func BookingLastCall(title string) Content {
	return Content{
		Title: "🎟 곧이에요!",
		Body:  fmt.Sprintf("%s 얼마 안 남았어요. 지금 예약하세요!", title),
	}
}

func CountdownWeek(title string) Content {
	return Content{
		Title: "📅 일주일 남았어요!",
		Body:  fmt.Sprintf("%s까지 D-7!", title),
	}
}

func CountdownThreeDays(title string) Content {
	return Content{
		Title: "📅 3일 남았어요!",
		Body:  fmt.Sprintf("%s까지 D-3!", title),
	}
}

// CountdownTomorrow takes the plan's location when set, otherwise its
// title.
func CountdownTomorrow(place string) Content {
	return Content{
		Title: "💕 내일이에요!",
		Body:  fmt.Sprintf("내일 %s에서 만나요!", place),
	}
}

func DayOf(title string) Content {
	return Content{
		Title: "🎉 오늘이에요!",
		Body:  fmt.Sprintf("%s 가는 날! 즐거운 데이트 되세요", title),
	}
}

// PhotoNudge fires the morning after the event.
func PhotoNudge(title string) Content {
	return Content{
		Title: "📸 추억 남기기",
		Body:  fmt.Sprintf("어제 %s 어땠어? 사진 올려서 추억 남기자!", title),
	}
}
