// Package browser provides a light-weight headless "browser" session: it
// fetches pages over http, parses them into navigable documents, and
// submits the forms found on them. There is no javascript execution and no
// rendering — just request, parse, fill in, resubmit.
//
// A session is built once and reused:
//
//	b, err := browser.NewBuilder().Finish()
//	if err != nil {
//		return err
//	}
//
//	p, err := b.NavigateTo(ctx, "https://en.wikipedia.org/", nil)
//	if err != nil {
//		return err
//	}
//
//	f, err := p.FormByID("search-form")
//	if err != nil {
//		return err
//	}
//
//	in, err := f.Input(input.KindSearch, "search")
//	if err != nil {
//		return err
//	}
//	in.SetValue("headless browser")
//
//	p, err = b.SubmitForm(ctx, f, "")
//
// The underlying resty client follows redirects automatically, keeps a
// session-scoped cookie jar, and can be pointed at additional root
// certificates or told to skip verification entirely for prototyping.
package browser
