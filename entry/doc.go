// Package entry 实现文件/目录组合树 (Composite) 以及在树上运行的访问器 (Visitor)。
//
// 树由 *File (叶子) 与 *Directory (容器) 组成，二者都实现密封接口 Entry。
// 遍历通过 Accept/Visit 双重分派完成：Entry.Accept 把控制权交给访问器对应的
// VisitFile 或 VisitDirectory，目录处理函数再通过 VisitChildren 按插入顺序
// 递归子节点，因此所有内置访问器都是前序遍历。
//
// 访问器是有状态的累加器，一个实例只服务于一次遍历，不能在两棵树的重叠遍历中复用。
// 递归深度等于树深度，没有额外限制。
package entry
