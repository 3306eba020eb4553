package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/zhouzirui/mirror-lab/backend/internal/analysis/censor"
	"github.com/zhouzirui/mirror-lab/backend/internal/analysis/sentiment"
)

// mirrorprobe 从标准输入逐行读取文本，打印每个词典下的打分、判定、改写与遮罩结果。
func main() {
	only := flag.String("lexicon", "", "只显示指定词典 (mirror-en, perspective-ko, perspective-ko-extended, mirroring-system)")
	tie := flag.String("tie", string(sentiment.Negative), "平局时的判定: positive 或 negative")
	flag.Parse()

	tieBreak := sentiment.Polarity(*tie)
	if tieBreak != sentiment.Positive && tieBreak != sentiment.Negative {
		log.Fatalf("invalid -tie value %q", *tie)
	}

	set, err := sentiment.NewSet()
	if err != nil {
		log.Fatal("compile lexicons: ", err)
	}
	classifiers := []*sentiment.Classifier{
		set.MirrorEnglish,
		set.PerspectiveInitial,
		set.PerspectiveExtended,
		set.MirroringSystem,
	}
	rewriter := censor.NewRewriter(censor.PositiveSpin)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Text", "Lang", "Lexicon", "Pos", "Neg", "Decision", "Rewrite", "Mask"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		lang := sentiment.DetectLanguage(text)
		rewritten, _ := rewriter.Rewrite(text)

		for _, c := range classifiers {
			if *only != "" && c.Name() != *only {
				continue
			}
			score := c.Score(text)
			masked, _ := censor.NewMasker(c.PositiveMatcher(), censor.DefaultMask).Mask(text)
			table.Append([]string{
				text,
				string(lang),
				c.Name(),
				hits(score.Positive, score.PositiveHits),
				hits(score.Negative, score.NegativeHits),
				string(score.DecideBinary(tieBreak)),
				rewritten,
				masked,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal("read stdin: ", err)
	}

	table.Render()
}

func hits(n int, words []string) string {
	if n == 0 {
		return "0"
	}
	return fmt.Sprintf("%d %v", n, words)
}
