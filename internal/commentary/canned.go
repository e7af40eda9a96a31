package commentary

import (
	"context"
	"fmt"
)

type lineFunc func(req Request) string

func fixed(s string) lineFunc {
	return func(Request) string { return s }
}

// Victory requests carry the level about to start, so the cleared level is one less.
var cannedLines = map[Event][]lineFunc{
	EventStreak: {
		fixed("네온 그리드 가동! 전부 부숴버리세요!"),
		fixed("시스템 온라인, 오늘 밤의 주인공은 당신입니다!"),
		fixed("패들 충전 완료, 미래를 향해 튕겨내세요!"),
		fixed("레트로 전설의 귀환, 시작합시다!"),
	},
	EventVictory: {
		func(r Request) string { return fmt.Sprintf("레벨 %d 돌파! 네온이 당신 이름을 외칩니다!", r.Level-1) },
		func(r Request) string { return fmt.Sprintf("완벽한 클리어! %d점, 미쳤습니다!", r.Score) },
		fixed("벽돌은 사라지고 전설만 남았습니다!"),
		func(r Request) string { return fmt.Sprintf("레벨 %d로 워프! 멈추지 마세요!", r.Level) },
	},
	EventDefeat: {
		func(r Request) string { return fmt.Sprintf("%d점, 다음엔 그리드를 정복하세요!", r.Score) },
		fixed("신호 끊김! 하지만 전설은 다시 부팅됩니다!"),
		func(r Request) string { return fmt.Sprintf("레벨 %d에서 멈췄지만 불꽃은 꺼지지 않았습니다!", r.Level) },
		fixed("게임 오버, 리트라이 버튼이 당신을 부릅니다!"),
	},
}

// Canned generates offline lines from a fixed Korean phrase pool.
// The choice depends only on the request, so it is deterministic.
type Canned struct{}

// Generate picks a line for req.
func (Canned) Generate(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	lines, ok := cannedLines[req.Event]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEvent, req.Event)
	}

	idx := (req.Score/10 + req.Level) % len(lines)
	if idx < 0 {
		idx += len(lines)
	}
	return lines[idx](req), nil
}
