package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/ncruces/zenity"
	"github.com/zooyer/golib/xos"

	"github.com/zooyer/cad2pdf"
	"github.com/zooyer/cad2pdf/canvas"
	"github.com/zooyer/cad2pdf/config"
	"github.com/zooyer/cad2pdf/logging"
)

var (
	trace  = flag.Bool("trace", false, "打印画布指令，不生成 PDF")
	rotate = flag.Bool("rotate", false, "插入块时应用旋转和非等比缩放")
	format = flag.String("format", "", "输入格式 text|binary，默认自动识别")
)

// convert 转换一个文件，PDF 写在同目录下
func convert(ctx context.Context, filename string, opt cad2pdf.Options) (*cad2pdf.Result, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	in := bufio.NewReader(file)

	var f cad2pdf.Format
	if *format != "" {
		f, err = cad2pdf.ParseFormat(*format)
	} else {
		head, _ := in.Peek(64)
		f, err = cad2pdf.DetectFormat(filename, head)
	}
	if err != nil {
		return nil, err
	}

	if *trace {
		rec := canvas.NewRecorder()
		res, err := cad2pdf.Convert(ctx, in, f, rec, opt)
		fmt.Print(rec.String())
		return res, err
	}

	var output = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".pdf"
	out, err := os.Create(output)
	if err != nil {
		return nil, err
	}

	res, err := cad2pdf.ConvertToPDF(ctx, in, f, out, opt)
	if e := out.Close(); e != nil && err == nil {
		err = e
	}
	if err != nil {
		_ = os.Remove(output)
		return res, err
	}

	fmt.Println("写入文件:", output)
	return res, nil
}

func options() cad2pdf.Options {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("配置无效，使用默认配置:", err)
		return cad2pdf.DefaultOptions()
	}
	logging.SetLogger(logging.NewText(os.Stderr, cfg.Level()))

	opt, err := cad2pdf.OptionsFrom(cfg)
	if err != nil {
		return cad2pdf.DefaultOptions()
	}
	return opt
}

// selectFiles 没有参数时弹出文件选择框
func selectFiles() ([]string, bool) {
	if flag.NArg() > 0 {
		return flag.Args(), false
	}

	filename, err := zenity.SelectFile(
		zenity.Title("选择要转换的图纸"),
		zenity.FileFilters{
			{Name: "图纸文件", Patterns: []string{"*.dxf", "*.bin", "*.cadb"}, CaseFold: true},
			{Name: "全部文件", Patterns: []string{"*"}},
		},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			fmt.Println("打开文件选择框失败:", err)
			fmt.Println("请把图纸文件拖入该程序上执行！")
		}
		return nil, true
	}
	return []string{filename}, true
}

func main() {
	defer xos.PauseExit()

	flag.Parse()

	opt := options()
	opt.InsertRotation = opt.InsertRotation || *rotate

	files, gui := selectFiles()
	if len(files) == 0 {
		return
	}

	fmt.Printf("开始处理: %d 个文件...\n", len(files))

	var failed int
	for _, filename := range files {
		job := uuid.New().String()
		log := logging.Logger().With("job", job, "file", filename)

		res, err := convert(context.Background(), filename, opt)
		if err != nil {
			failed++
			log.Error("conversion failed", "error", err)
			fmt.Printf("[%s] 转换失败: %v\n", filename, err)
			if gui {
				_ = zenity.Error(err.Error(), zenity.Title("转换失败"))
			}
			continue
		}
		log.Info("conversion finished", "entities", len(res.Entities), "scale", res.Scale)

		report := summarize(filepath.Base(filename), res)
		fmt.Println(report)

		if *trace {
			continue
		}
		var txt = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".txt"
		if err = xos.AppendFile(txt, []byte(report), 0644); err != nil {
			fmt.Println("写入报告失败:", err)
		}
	}

	fmt.Printf("完成: 成功 %d 个，失败 %d 个\n", len(files)-failed, failed)
}
